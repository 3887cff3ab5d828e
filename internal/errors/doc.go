// Package errors provides the structured error type used across rpg-sheets.
//
// Every error carries a Code, a human readable Message, an optional Cause
// and optional metadata. Codes survive wrapping, so a NotFound raised by a
// repository is still a NotFound after an orchestrator wraps it with
// context.
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.InvalidArgument("roster root must be a sequence").
//	    WithMeta("path", path)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load roster")
//	}
//
// # Checking
//
//	if errors.IsNotFound(err) {
//	    // degrade to an empty catalog
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Fs == nil {
//	    vb.RequiredField("Fs")
//	}
//	return vb.Build()
//
// # Layer Guidelines
//
// Repositories return NotFound for missing files or keys and InvalidArgument
// for content that cannot be decoded. Orchestrators wrap with business
// context. The CLI maps the final code to a process exit status with
// Code.ExitCode.
package errors

package convert

import "errors"

// Sentinel errors for the conditions that abort a run. Callers classify
// wrapped errors with errors.Is; the CLI maps any of these to a single-line
// message and a non-zero exit.
var (
	// ErrInputNotFound reports a named input file or directory that does
	// not exist at validation time.
	ErrInputNotFound = errors.New("input not found")

	// ErrOutputDirNotFound reports that the -o directory does not exist.
	// The tool never creates the output root itself, only subtrees below it.
	ErrOutputDirNotFound = errors.New("output directory not found")

	// ErrUnknownFormat reports a format identifier missing from the registry.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrParseFailure wraps an error from the graph toolkit's parser.
	ErrParseFailure = errors.New("parse failure")

	// ErrSerializeFailure wraps an error from the graph toolkit's serializer.
	ErrSerializeFailure = errors.New("serialize failure")

	// ErrSelfOverwrite reports a resolved target path equal to the input
	// path. Writing would destroy the input, so the run aborts.
	ErrSelfOverwrite = errors.New("output file equals input file")

	// ErrInteractionUnavailable reports that an overwrite confirmation was
	// needed but no interactive input is available. Use --force in headless
	// environments.
	ErrInteractionUnavailable = errors.New("interactive confirmation unavailable")
)

package tween

import "errors"

var (
	// ErrInvalidHandle is returned by data accessors when a handle is stale,
	// foreign, or out of range.
	ErrInvalidHandle = errors.New("tween: invalid handle")

	// ErrBuilderConsumed reports use of a builder after it was committed or
	// disposed. Call Preserve to reuse a builder.
	ErrBuilderConsumed = errors.New("tween: builder already consumed")

	// ErrBuilderNotInitialized reports use of a zero Builder.
	ErrBuilderNotInitialized = errors.New("tween: builder not initialized")

	// ErrNilArgument reports a missing binding target.
	ErrNilArgument = errors.New("tween: nil argument")

	// ErrRegistryClosed reports use of a registry after Close.
	ErrRegistryClosed = errors.New("tween: registry closed")

	// ErrUnknownEase reports an easing name missing from the catalog.
	ErrUnknownEase = errors.New("tween: unknown ease")
)

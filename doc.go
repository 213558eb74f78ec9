// Package quadxform draws one textured quad with [Ebitengine] and reshapes it
// with 2D affine transforms.
//
// # Quick start
//
//	err := quadxform.Run(quadxform.Config{
//		Title:   "Crate",
//		Texture: "crate.png",
//		ShowHelp: true,
//	})
//
// # Pipeline
//
// A transform starts as either a fixed-step [Command] (translate, rotate,
// scale or shear by one step) or a numeric [Form] with seven optional fields.
// [BuildCommand] and [BuildForm] turn these into an [Affine]. A [Transformer]
// applies the matrix to the current six vertices and keeps the result, so the
// next transform starts from the latest geometry. [Session] ties the two
// together and bumps a version number that the [Renderer] watches to know when
// to rebuild its vertex buffer.
//
//	s := quadxform.NewSession(quadxform.QuadPositions())
//	s.Dispatch(quadxform.CommandTranslateRight)
//	s.Submit(quadxform.NewForm("", "", "180", "", "", "", ""))
//
// Rotation is about the origin, not the quad's center, so rotating an
// off-center quad also moves it.
//
// # Errors
//
// A form field that is not a finite number fails with an [InvalidInputError]
// matching [ErrInvalidNumericInput]. Unknown commands fail with
// [ErrUnrecognizedCommand]. In both cases the geometry is left unchanged.
//
// # Logging
//
// Nothing is logged by default. Call [SetLogger] with an [log/slog] logger to
// see applied matrices (debug), asset events (info) and rejected input (warn).
//
// [Ebitengine]: https://ebitengine.org
package quadxform

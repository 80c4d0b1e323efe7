// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render draws laid out paragraphs.
//
// A Renderer receives one call per visible glyph. Two renderers are
// provided: Image paints into any draw.Image through fonts that implement
// fonts.Drawer, and Recorder captures the draw calls so they can be
// inspected or replayed to another renderer later.
//
// # Usage
//
//	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
//	e := paratext.New(paratext.WithRenderer(render.NewImage(img)))
//	e.RegisterFont(0, fonts.Basic())
//	e.PrintString(nil, 0, 8, 20, "Hello ^01world")
//
// Drawing is synchronous. Image and Recorder serialize their own calls,
// so one renderer may be shared by several goroutines.
package render

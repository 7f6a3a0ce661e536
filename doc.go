// Package highlight is a selection and highlight engine for instanced 3D
// scenes.
//
// A [World] holds models made of fragments: instanced meshes where every
// instance draws one logical item. A [Highlighter] listens to the world's
// [Viewport], picks what is under the pointer with a [Raycaster] and paints
// the result into named selection groups.
//
// # Quick start
//
//	world := highlight.NewWorld()
//	world.SetViewport(highlight.NewViewport(highlight.Rect{Width: 800, Height: 600}))
//	world.SetCamera(highlight.NewCamera(eye, target, 800.0/600))
//	// ... add models ...
//
//	h := highlight.NewHighlighter(world, highlight.DefaultConfig())
//	if err := h.Setup(); err != nil {
//		log.Fatal(err)
//	}
//
// Feed pointer events to the viewport, either from the input subpackage or
// with [Viewport.Dispatch], and call [Highlighter.Update] once per frame to
// advance camera framing.
//
// # Groups
//
// Setup creates two groups. The select group is filled by clicks; the hover
// group follows the pointer and never shows items another group already
// holds. Add more with [Highlighter.CreateGroup] and fill them with
// [Highlighter.HighlightByMap]. Every group exposes OnHighlight and OnClear
// events; attach an [EntityStore] to forward them into an ECS.
//
// When a select highlight covers items of a custom group, their membership is
// remembered and their color comes back once the selection is cleared.
//
// # Clipping planes
//
// Hits on the clipped-away side of an enabled [ClippingPlane] are ignored.
// The cross-sections a plane cuts are [FillMesh] surfaces; they are pickable
// and are painted together with the fragments they were cut from.
//
// # Configuration
//
// [Config] may be loaded from TOML with [LoadConfig]:
//
//	select_name = "select"
//	selection_color = "#BCF124"
//	multiple = "shift"
//	zoom_to_selection = true
//	zoom_ease = "out-cubic"
//
// # Scripted input
//
// [LoadTestScript] parses a JSON list of click, move, drag and wait steps.
// Attach the runner with [Viewport.SetTestRunner] to replay interactions
// frame by frame without real input.
package highlight

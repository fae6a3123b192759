// Package gridmenu is a spatial menu for 3D pointers, built on [Ebitengine].
//
// A set of movable points partitions the surface into proximity regions.
// A continuously streamed pointer (position plus a depth signal) selects the
// region whose point is nearest; pushing the pointer through the touch plane
// fires a touch on that point, once per dip.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens a window with a 3×3
// menu and emulates the 3D pointer with the mouse wheel:
//
//	gridmenu.Run(gridmenu.DefaultConfig())
//
// Device drivers push frames into the app's queue from any goroutine:
//
//	app, _ := gridmenu.NewApp(cfg, nil)
//	go driver.Stream(func(s gridmenu.PointerSample) {
//		app.Frames().Push(gridmenu.PointerFrame{
//			Samples: []gridmenu.PointerSample{s},
//			At:      time.Now(),
//		})
//	})
//	app.Run()
//
// # Session
//
// All interaction state lives in a [Session]. It is driven by
// [Session.Dispatch] with one [Event] at a time (add, remove, drag, resize,
// tick, frame, load, save, grid) and answers with [Command] values the
// runner executes (redraw, play the cue, highlight, show the export panel).
// Every mutation rebuilds the [SpatialIndex] and the partition and resets the
// [TouchMachine] before Dispatch returns.
//
// # Persistence
//
// [ExportCoordinates] and [ImportCoordinates] convert the point set to and
// from CSV with coordinates normalised by the surface size, so a layout saved
// on one window size replays proportionally on another.
//
// [Ebitengine]: https://ebitengine.org
package gridmenu

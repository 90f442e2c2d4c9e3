// Package ui provides the Bubble Tea interface for gridlab.
//
// # Layout
//
// One screen with four bands:
//
//   - Header: global counter, memoization state, record count, last update
//   - Tab bar: the six exercise tabs (plus the render log when open)
//   - Content: the active tab inside a titled box, with a render count line
//   - Footer: bubbles/help hints for the active tab, or a flash notice
//
// # Components
//
// Every tab is a small tree of components. A component owns a memo.Func
// keyed on its props and only calls its draw function when the props change.
// Parents always memoize on their own state; children honour the "m"
// toggle, so turning memoization off makes every child redraw whenever its
// parent does. Each redraw bumps a counter and writes a "render" event to
// the render log.
//
// Props carry the frame (theme name, width, memoize flag) so resizing or
// switching theme redraws everything.
//
// # Data Grid
//
// The refactor tab drives grid.View. Its output is split into
// GridFilters, GridHeader, GridRow (one per page slot, cells drawn inline)
// and GridPagination. Rows are compared by record and selection, so moving
// the cursor redraws two rows.
//
// # Resources
//
// The hooks tab reads a profile and a todo list through resource.Cache.
// Fetches run as tea.Cmds; the spinner ticks only while one is in flight.
//
// # Render Log
//
// "L" opens a viewport over the tail of the render log, re-read on every UI
// tick while open.
package ui

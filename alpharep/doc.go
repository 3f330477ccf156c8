// Package alpharep wires the eight operations of the α-representation
// Tait-coloring engine (spec §6) into a single import, so that any
// future outer layer — HTTP, CLI, or otherwise — has one call per
// operation instead of reaching into five internal packages directly.
//
// Grounded on original_source/app/main.py's endpoint handlers, which
// call the same eight functions directly in the request body; the
// FastAPI routing, pydantic request models, CORS middleware, and
// static file/template serving that surround those calls there are all
// out of scope here (§1, §5).
package alpharep

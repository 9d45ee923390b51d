// Package pkg provides the core libraries for sprawl.
//
// # Overview
//
// sprawl grows a random connected shape on an unbounded grid and prints it as
// a brick wall with the shape cut out. The pkg directory is organized as:
//
//  1. [grid] - Cells, cell sets, frontier and bounding box
//  2. [selector] - Choice of the next cell from the frontier
//  3. [growth] - The step-by-step growth engine
//  4. [render] - Text rendering of a finished shape
//  5. [pipeline] - Orchestration (grow → render)
//  6. [config], [errors], [observability], [buildinfo] - Supporting packages
//
// # Architecture
//
//	{(0,0)}
//	   ↓
//	[growth] engine: frontier → select → insert, n times
//	   ↓
//	[render] text image on stdout
//
// # Quick Start
//
//	shape, err := growth.Grow(ctx, growth.Options{Steps: 128})
//	if err != nil {
//	    return err
//	}
//	return render.Text(ctx, os.Stdout, shape, render.Brick)
//
// [grid]: github.com/matzehuels/sprawl/pkg/grid
// [selector]: github.com/matzehuels/sprawl/pkg/selector
// [growth]: github.com/matzehuels/sprawl/pkg/growth
// [render]: github.com/matzehuels/sprawl/pkg/render
// [pipeline]: github.com/matzehuels/sprawl/pkg/pipeline
// [config]: github.com/matzehuels/sprawl/pkg/config
// [errors]: github.com/matzehuels/sprawl/pkg/errors
// [observability]: github.com/matzehuels/sprawl/pkg/observability
// [buildinfo]: github.com/matzehuels/sprawl/pkg/buildinfo
package pkg

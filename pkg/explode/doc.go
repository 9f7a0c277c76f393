// Package explode converts notebooks to directory trees and back.
//
// # Layout
//
// [Explode] writes one directory per notebook:
//
//	analysis.ipynb.exploded/
//	  metadata.json              notebook metadata
//	  cells_sequence             one cell id per line, in cell order
//	  0f8fad5b-d9cb-.../         one directory per cell, named by its id
//	    source.py                source.md for markdown, source.txt for raw
//	    metadata.json            only when the cell has metadata
//	    outputs_sequence         only when the cell has outputs
//	    output1.txt              stream text
//	    error2.json              error document
//	    output3.png              one file per mime type of a bundle
//	    output3.txt
//	    output3-metadata.json    metadata of the bundle
//
// JSON files are written with sorted keys and two-space indentation so that
// re-exploding an unchanged notebook produces byte-identical files.
//
// cells_sequence is authoritative: [Recombine] never looks at directory
// listing order.
//
// # Outputs
//
// Each line of outputs_sequence is a [Descriptor] naming the output variant:
//
//	stdout                       stream on stdout
//	stderr                       stream on stderr
//	error                        error
//	image/png, text/plain        display_data
//	text/plain (7)               execute_result with execution count 7
//
// Mime types map to file extensions through a single closed table (see
// [MimeTypes]). A mime type outside the table fails both directions with
// MIME_TYPE rather than being dropped.
//
// # Identity
//
// A cell directory is named by [notebook.Cell.ID]. Cells without an id get
// a fresh UUID. [Recombine] sets the id from the directory name, so an
// explode/recombine/explode cycle reuses the same directory names.
package explode

package explode

import (
	"fmt"
	"slices"
)

// MimeType is one entry of the closed mime table shared by [Explode] and
// [Recombine].
type MimeType struct {
	Name   string // e.g. "image/png"
	Ext    string // file extension including the dot
	Binary bool   // payload is base64 in the notebook, raw bytes on disk
}

// mimeTable lists every mime type a mimebundle may carry. Adding a type here
// is the only edit needed to support it in both directions.
var mimeTable = []MimeType{
	{Name: "text/plain", Ext: ".txt"},
	{Name: "text/html", Ext: ".html"},
	{Name: "text/latex", Ext: ".tex"},
	{Name: "image/png", Ext: ".png", Binary: true},
	{Name: "image/jpeg", Ext: ".jpg", Binary: true},
}

var (
	mimeByName = make(map[string]MimeType, len(mimeTable))
	mimeByExt  = make(map[string]MimeType, len(mimeTable))
)

func init() {
	for _, m := range mimeTable {
		if _, dup := mimeByName[m.Name]; dup {
			panic(fmt.Sprintf("explode: duplicate mime type %q", m.Name))
		}
		if _, dup := mimeByExt[m.Ext]; dup {
			panic(fmt.Sprintf("explode: duplicate mime extension %q", m.Ext))
		}
		mimeByName[m.Name] = m
		mimeByExt[m.Ext] = m
	}
}

// LookupMime returns the table entry for a mime type name.
func LookupMime(name string) (MimeType, bool) {
	m, ok := mimeByName[name]
	return m, ok
}

// LookupExt returns the table entry whose file extension is ext.
func LookupExt(ext string) (MimeType, bool) {
	m, ok := mimeByExt[ext]
	return m, ok
}

// MimeTypes returns a copy of the mime table in declaration order.
func MimeTypes() []MimeType {
	return slices.Clone(mimeTable)
}

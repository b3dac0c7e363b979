// Package parser reads draft points from CSV files and Excel workbooks.
package parser

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"path"
	"strings"
)

// part returns the content of a package part, or nil if absent.
func part(r *zip.Reader, name string) ([]byte, error) {
	f, err := r.Open(name)
	if err != nil {
		return nil, nil
	}
	defer f.Close()
	return io.ReadAll(f)
}

// visitFunc handles a start element. Returning true means the handler has
// consumed the element through its end tag.
type visitFunc func(se xml.StartElement) bool

func decoder(data []byte) *xml.Decoder {
	return xml.NewDecoder(bytes.NewReader(data))
}

// walk calls visit for every element nested in the one just opened (or in
// the whole document, for a fresh decoder), returning after its end tag.
func walk(d *xml.Decoder, visit visitFunc) {
	for depth := 1; depth > 0; {
		tok, err := d.Token()
		if err != nil {
			return
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !visit(t) {
				depth++
			}
		case xml.EndElement:
			depth--
		}
	}
}

// text returns the character data of the element just opened.
func text(d *xml.Decoder) string {
	var sb strings.Builder
	for depth := 1; depth > 0; {
		tok, err := d.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String()
}

func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// resolveTarget turns a relationship target into a part name, relative to
// the directory of the part owning the relationship.
func resolveTarget(owner, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Join(path.Dir(owner), target)
}

// relsPathFor returns the relationships part of a package part,
// e.g. xl/drawings/drawing1.xml -> xl/drawings/_rels/drawing1.xml.rels.
func relsPathFor(name string) string {
	dir, file := path.Split(name)
	return dir + "_rels/" + file + ".rels"
}

// relationship is one entry of a .rels part.
type relationship struct {
	id     string
	kind   string
	target string
}

// readRelationships returns the relationships of owner, with targets
// resolved to part names.
func readRelationships(r *zip.Reader, owner string) ([]relationship, error) {
	data, err := part(r, relsPathFor(owner))
	if err != nil || data == nil {
		return nil, err
	}
	return parseRelationships(owner, data), nil
}

func parseRelationships(owner string, data []byte) []relationship {
	var rels []relationship
	walk(decoder(data), func(se xml.StartElement) bool {
		if se.Name.Local != "Relationship" || attr(se, "TargetMode") == "External" {
			return false
		}
		kind := attr(se, "Type")
		rels = append(rels, relationship{
			id:     attr(se, "Id"),
			kind:   strings.ToLower(kind[strings.LastIndex(kind, "/")+1:]),
			target: resolveTarget(owner, attr(se, "Target")),
		})
		return false
	})
	return rels
}

// targetsOf maps relationship ids of the given kind (the last segment of the
// relationship type, e.g. "drawing" or "chart") to part names.
func targetsOf(rels []relationship, kind string) map[string]string {
	result := make(map[string]string)
	for _, rel := range rels {
		if rel.kind == strings.ToLower(kind) {
			result[rel.id] = rel.target
		}
	}
	return result
}

// worksheetParts maps sheet names to worksheet part names.
func worksheetParts(r *zip.Reader) (map[string]string, error) {
	const workbook = "xl/workbook.xml"

	data, err := part(r, workbook)
	if err != nil || data == nil {
		return nil, err
	}
	rels, err := readRelationships(r, workbook)
	if err != nil {
		return nil, err
	}
	targets := targetsOf(rels, "worksheet")

	result := make(map[string]string)
	walk(decoder(data), func(se xml.StartElement) bool {
		if se.Name.Local != "sheet" {
			return false
		}
		if target, ok := targets[attr(se, "id")]; ok {
			result[attr(se, "name")] = target
		}
		return false
	})
	return result, nil
}

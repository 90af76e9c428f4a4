package digest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
)

// decodeMetadata reads the sidecar's child elements as (field, value) pairs.
// Unrecognized fields are ignored. On a decode error the fields read so far
// are returned together with the error.
func decodeMetadata(data []byte) (model.Metadata, error) {
	var md model.Metadata
	dec := xml.NewDecoder(bytes.NewReader(data))

	depth := 0
	field := ""
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return md, fmt.Errorf("decode metadata: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 2 {
				field = t.Name.Local
				text.Reset()
			}
		case xml.CharData:
			if depth == 2 {
				text.Write(t)
			}
		case xml.EndElement:
			if depth == 2 {
				setField(&md, field, strings.TrimSpace(text.String()))
			}
			depth--
		}
	}
	return md, nil
}

func setField(md *model.Metadata, field, value string) {
	switch strings.ToLower(field) {
	case "title":
		md.Title = value
	case "filename":
		md.Filename = value
	case "urlname":
		md.URLName = value
	case "isredirectpage":
		md.IsRedirectPage = value
	case "numrevisions":
		md.NumRevisions = value
	case "pageid":
		md.PageID = value
	case "revid":
		md.RevID = value
	case "edittime":
		md.EditTime = value
	case "permalink":
		md.Permalink = value
	case "categories":
		md.Categories = value
	case "timestamp":
		md.Timestamp = value
	case "user":
		md.User = value
	}
}

// metadataCategories splits the sidecar's category list. The downloader
// writes it comma separated.
func metadataCategories(md model.Metadata) []string {
	if md.Categories == "" {
		return nil
	}
	var cats []string
	for _, c := range strings.Split(md.Categories, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	return cats
}

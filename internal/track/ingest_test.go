package track

import (
	"errors"
	"testing"
)

func TestDecodeNestedTrackData(t *testing.T) {
	doc := []byte(`{"data":{"trackData":[[
		{"lat":47.1,"lon":11.2,"ele":1200},
		{"lat":47.2,"lon":11.3,"ele":1250}
	]]}}`)

	points, err := Decode(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Lat != 47.1 || points[0].Lon != 11.2 || points[0].Elevation != 1200 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
}

func TestDecodeNestedTrackDataUsesFirstSegmentOnly(t *testing.T) {
	doc := []byte(`{"data":{"trackData":[
		[{"lat":1,"lon":1,"ele":10}],
		[{"lat":2,"lon":2,"ele":20},{"lat":3,"lon":3,"ele":30}]
	]}}`)

	points, err := Decode(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Lat != 1 {
		t.Fatalf("expected only the first inner list, got %+v", points)
	}
}

func TestDecodeFlatTrackData(t *testing.T) {
	doc := []byte(`{"data":{"trackData":[
		{"lat":47.1,"lon":11.2,"ele":1200},
		{"lat":47.2,"lon":11.3,"ele":1250},
		{"lat":47.3,"lon":11.4,"ele":1300}
	]}}`)

	points, err := Decode(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
}

func TestDecodeBareArray(t *testing.T) {
	doc := []byte(`[{"lat":47.1,"lon":11.2,"ele":1200},{"lat":47.2,"lon":11.3}]`)

	points, err := Decode(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[1].Elevation != 0 {
		t.Fatalf("missing ele should read as zero, got %v", points[1].Elevation)
	}
}

func TestDecodeCoordinates(t *testing.T) {
	doc := []byte(`{"coordinates":[[11.2,47.1,1200],[11.3,47.2]]}`)

	points, err := Decode(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	// triples are lon-first
	if points[0].Lon != 11.2 || points[0].Lat != 47.1 || points[0].Elevation != 1200 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Elevation != 0 {
		t.Fatalf("two-element triple should read ele as zero, got %v", points[1].Elevation)
	}
}

func TestDecodeShapePriority(t *testing.T) {
	// trackData and coordinates in one document: trackData wins.
	doc := []byte(`{
		"data":{"trackData":[{"lat":1,"lon":2,"ele":3}]},
		"coordinates":[[9,9,9],[8,8,8]]
	}`)

	points, err := Decode(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Lat != 1 {
		t.Fatalf("expected the trackData shape to win, got %+v", points)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode([]byte(`{"data":`)); !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestDecodeEmptyTrackData(t *testing.T) {
	// A matched shape with zero points is empty data, not a fallthrough
	// to the other shapes.
	doc := []byte(`{"data":{"trackData":[]},"coordinates":[[1,2,3]]}`)
	if _, err := Decode(doc); !errors.Is(err, ErrNoTrackData) {
		t.Fatalf("expected ErrNoTrackData, got %v", err)
	}
}

func TestDecodeNoShapeMatches(t *testing.T) {
	for _, doc := range []string{
		`{"foo":"bar"}`,
		`[]`,
		`{"coordinates":[]}`,
		`"just a string"`,
		`42`,
	} {
		if _, err := Decode([]byte(doc)); !errors.Is(err, ErrNoTrackData) {
			t.Fatalf("doc %q: expected ErrNoTrackData, got %v", doc, err)
		}
	}
}

func TestDecodeTrackDataNotArrayFallsThrough(t *testing.T) {
	doc := []byte(`{"data":{"trackData":"oops"},"coordinates":[[11.2,47.1,5]]}`)

	points, err := Decode(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Lat != 47.1 {
		t.Fatalf("expected the coordinates shape, got %+v", points)
	}
}

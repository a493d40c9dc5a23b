// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package pnmlio

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dalzilio/ptcheck/ptnet"
)

func loopNet(t *testing.T) *ptnet.Net {
	t.Helper()
	net := ptnet.NewNet("loop")
	p0, _ := net.AddPlace("p0", 1, false)
	tr, _ := net.AddTransition("t")
	_ = net.AddArc(p0, tr, 1, ptnet.PlaceToTransition)
	_ = net.AddArc(p0, tr, 2, ptnet.TransitionToPlace)
	return net
}

func TestWriteProducesWellFormedXML(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, loopNet(t)); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	dec := xml.NewDecoder(&buf)
	for {
		if _, err := dec.Token(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			t.Fatalf("output is not well-formed XML: %v", err)
		}
	}
}

func TestWriteIncludesPlacesAndArcWeights(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, loopNet(t)); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{`id="pl_p0"`, `id="tr_t"`, "<initialMarking>", "<inscription>"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestWriteRejectsOmegaInitialMarking(t *testing.T) {
	net := ptnet.NewNet("unbounded")
	_, _ = net.AddPlace("p0", ptnet.Omega, false)

	var buf bytes.Buffer
	if err := Write(&buf, net); err == nil {
		t.Errorf("expected an error for a place with an omega initial marking")
	}
}

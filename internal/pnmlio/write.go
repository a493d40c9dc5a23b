// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package pnmlio

import (
	"encoding/xml"
	"fmt"
	"io"
	"sort"

	"github.com/dalzilio/ptcheck/ptnet"
)

// Write marshals net's initial marking and structure into PNML and writes
// the result to w. It returns an error if any place's initial marking is
// ptnet.Omega, since PNML has no syntax for an unbounded token count.
//
// This is a debug/example aid only: nothing in the checking pipeline reads
// PNML back in (see package doc).
func Write(w io.Writer, net *ptnet.Net) error {
	places := make([]placeXML, len(net.Places))
	for i, p := range net.Places {
		if p.Initial == ptnet.Omega {
			return fmt.Errorf("pnmlio: place %q has an omega initial marking, cannot represent in PNML", p.Name)
		}
		places[i] = placeXML{Name: p.Name, Init: p.Initial}
	}

	trans := make([]transXML, len(net.Transitions))
	for i, tr := range net.Transitions {
		trans[i] = transXML{Name: tr.Name}
		for _, p := range sortedKeys(tr.Pre) {
			trans[i].In = append(trans[i].In, arcXML{Place: net.PlaceName(p), Mult: tr.Pre[p]})
		}
		for _, p := range sortedKeys(tr.Post) {
			trans[i].Out = append(trans[i].Out, arcXML{Place: net.PlaceName(p), Mult: tr.Post[p]})
		}
	}

	doc := pt{
		Net: netXML{
			Type: "http://www.pnml.org/version-2009/grammar/ptnet",
			ID:   net.Name,
			Name: net.Name,
			Page: pageXML{ID: "page", Places: places, Trans: trans},
		},
	}

	if _, err := w.Write([]byte(doctype)); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	return encoder.Encode(doc)
}

func sortedKeys(m map[int]int64) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Copyright (c) 2026 Silvano DAL ZILIO
//
// GNU Affero GPL v3

package pnmlio

import (
	"encoding/xml"
	"fmt"
)

// doctype is the XML prologue written ahead of the PNML document.
const doctype = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// pt is the root element of a PNML file for a P/T net without graphical
// information.
type pt struct {
	XMLName xml.Name `xml:"http://www.pnml.org/version-2009/grammar/pnml pnml"`
	Net     netXML   `xml:"net"`
}

type netXML struct {
	Type string `xml:"type,attr"`
	ID   string `xml:"id,attr"`
	Name string `xml:"name>text"`
	Page pageXML `xml:"page"`
}

type pageXML struct {
	ID     string      `xml:"id,attr"`
	Places []placeXML  `xml:"place"`
	Trans  []transXML  `xml:"transition"`
}

// placeXML is the type used to marshal places.
type placeXML struct {
	Name string
	Init int64
}

// transXML is the type used to marshal transitions.
type transXML struct {
	Name    string
	In, Out []arcXML
}

// arcXML is a pair of a place and a multiplicity.
type arcXML struct {
	Place string
	Mult  int64
}

// MarshalXML makes placeXML an xml.Marshaler so that the place's id
// attribute can be derived from its name (places and transitions may share
// a name in a PT net, so the id gets a disambiguating prefix).
func (v placeXML) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "id"}, Value: "pl_" + v.Name}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeElement(v.Name, xml.StartElement{Name: xml.Name{Local: "name"}}); err != nil {
		return err
	}
	if v.Init != 0 {
		if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "initialMarking"}}); err != nil {
			return err
		}
		if err := e.EncodeElement(v.Init, xml.StartElement{Name: xml.Name{Local: "text"}}); err != nil {
			return err
		}
		if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "initialMarking"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// MarshalXML makes transXML an xml.Marshaler.
func (v transXML) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "id"}, Value: "tr_" + v.Name}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := e.EncodeElement(v.Name, xml.StartElement{Name: xml.Name{Local: "name"}}); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: start.Name}); err != nil {
		return err
	}
	for _, a := range v.In {
		if err := encodeArc(e, fmt.Sprintf("p2t-%s-%s", a.Place, v.Name), "pl_"+a.Place, "tr_"+v.Name, a.Mult); err != nil {
			return err
		}
	}
	for _, a := range v.Out {
		if err := encodeArc(e, fmt.Sprintf("t2p-%s-%s", v.Name, a.Place), "tr_"+v.Name, "pl_"+a.Place, a.Mult); err != nil {
			return err
		}
	}
	return nil
}

func encodeArc(e *xml.Encoder, id, src, tgt string, weight int64) error {
	arc := xml.StartElement{
		Name: xml.Name{Local: "arc"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "id"}, Value: id},
			{Name: xml.Name{Local: "source"}, Value: src},
			{Name: xml.Name{Local: "target"}, Value: tgt},
		},
	}
	if err := e.EncodeToken(arc); err != nil {
		return err
	}
	if weight != 1 {
		if err := e.EncodeToken(xml.StartElement{Name: xml.Name{Local: "inscription"}}); err != nil {
			return err
		}
		if err := e.EncodeElement(weight, xml.StartElement{Name: xml.Name{Local: "text"}}); err != nil {
			return err
		}
		if err := e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "inscription"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: xml.Name{Local: "arc"}})
}

// Package netlist derives electrical connectivity from a placed board.
// Nets are built from the per-part pin maps in the component catalog:
// power rails are folded onto canonical names, shared buses (I2C, SPI,
// UART, USB, CAN) get conventional net labels, and interrupt or reset
// lines get per-reference nets for the schematic stage to label.
package netlist

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is one pad attached to a net.
type Node struct {
	Ref string `json:"ref"`
	Pad string `json:"pad"`
}

// Netlist is an insertion-ordered set of nets. Order matters: the JSON
// artifact must serialize identically for identical inputs, and the
// schematic writer lays labels out in net order.
type Netlist struct {
	order []string
	nets  map[string][]Node
}

func New() *Netlist {
	return &Netlist{nets: make(map[string][]Node)}
}

// Add attaches a pad to a net, creating the net on first use.
// Duplicate ref/pad pairs on the same net are dropped.
func (n *Netlist) Add(net, ref, pad string) {
	nodes, ok := n.nets[net]
	if !ok {
		n.order = append(n.order, net)
	}
	for _, existing := range nodes {
		if existing.Ref == ref && existing.Pad == pad {
			return
		}
	}
	n.nets[net] = append(nodes, Node{Ref: ref, Pad: pad})
}

// Names returns the net names in insertion order.
func (n *Netlist) Names() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Nodes returns the pads on the named net, in insertion order.
func (n *Netlist) Nodes(net string) []Node {
	return n.nets[net]
}

// Has reports whether the named net exists.
func (n *Netlist) Has(net string) bool {
	_, ok := n.nets[net]
	return ok
}

// Len returns the number of nets.
func (n *Netlist) Len() int {
	return len(n.order)
}

// MarshalJSON emits the nets as a JSON object with keys in insertion
// order. encoding/json sorts map keys, so the object is built by hand.
func (n *Netlist) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range n.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		nodes, err := json.Marshal(n.nets[name])
		if err != nil {
			return nil, err
		}
		buf.Write(nodes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores a netlist from its artifact form. Net order
// follows the order of keys in the JSON text.
func (n *Netlist) UnmarshalJSON(data []byte) error {
	n.order = nil
	n.nets = make(map[string][]Node)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("netlist: expected JSON object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name := keyTok.(string)
		var nodes []Node
		if err := dec.Decode(&nodes); err != nil {
			return err
		}
		n.order = append(n.order, name)
		n.nets[name] = nodes
	}
	_, err = dec.Token()
	return err
}

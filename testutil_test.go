package planfind

// tree literal helpers shared by the package tests

func nNull() *Node            { return &Node{kind: Null} }
func nBool(b bool) *Node      { return &Node{kind: Bool, value: b} }
func nNum(f float64) *Node    { return &Node{kind: Number, value: f} }
func nStr(s string) *Node     { return &Node{kind: String, value: s} }
func nArr(nn ...*Node) *Node  { return &Node{kind: Array, value: nn} }
func nObj(kn ...Entry) *Node  { return &Node{kind: Object, value: kn} }
func ent(k string, n *Node) Entry { return Entry{Key: k, Node: n} }

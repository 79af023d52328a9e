package model

// AbstractTopologyType is the base of topology objects.
type AbstractTopologyType struct {
	AbstractGMLType
}

func (t *AbstractTopologyType) AbstractTopology() *AbstractTopologyType { return t }

// AbstractTopoPrimitiveType is the base of nodes, edges, faces and
// topological solids.
type AbstractTopoPrimitiveType struct {
	AbstractTopologyType
	Isolated  []Property[TopoPrimitive] `xml:"isolated"`
	Container *Property[TopoPrimitive]  `xml:"container"`
}

func (t *AbstractTopoPrimitiveType) AbstractTopoPrimitive() *AbstractTopoPrimitiveType { return t }

// NodeType is a zero-dimensional topology primitive.
type NodeType struct {
	AbstractTopoPrimitiveType
	DirectedEdge  []DirectedProperty[*EdgeType] `xml:"directedEdge"`
	PointProperty *Property[*PointType]         `xml:"pointProperty"`
}

// EdgeType is a one-dimensional topology primitive bounded by exactly two
// nodes.
type EdgeType struct {
	AbstractTopoPrimitiveType
	DirectedNode  []DirectedProperty[*NodeType] `xml:"directedNode" gml:"occurs=2..2"`
	DirectedFace  []DirectedProperty[*FaceType] `xml:"directedFace"`
	CurveProperty *Property[Curve]              `xml:"curveProperty"`
}

// Start returns the node the edge starts from: its "-" directed node
func (e *EdgeType) Start() *DirectedNodePropertyType { return e.directedNode(SignNegative) }

// End returns the node the edge ends at: its "+" directed node
func (e *EdgeType) End() *DirectedNodePropertyType { return e.directedNode(SignPositive) }

func (e *EdgeType) directedNode(sign SignType) *DirectedNodePropertyType {
	for i := range e.DirectedNode {
		if e.DirectedNode[i].OrientationValue() == sign {
			return &e.DirectedNode[i]
		}
	}
	return nil
}

// FaceType is a two-dimensional topology primitive.
type FaceType struct {
	AbstractTopoPrimitiveType
	DirectedEdge      []DirectedProperty[*EdgeType]      `xml:"directedEdge" gml:"occurs=1..*"`
	DirectedTopoSolid []DirectedProperty[*TopoSolidType] `xml:"directedTopoSolid"`
	SurfaceProperty   *Property[Surface]                 `xml:"surfaceProperty"`
}

// TopoSolidType is a three-dimensional topology primitive.
type TopoSolidType struct {
	AbstractTopoPrimitiveType
	DirectedFace []DirectedProperty[*FaceType] `xml:"directedFace" gml:"occurs=1..*"`
}

// TopoPointType is a topological point expression.
type TopoPointType struct {
	AbstractTopologyType
	DirectedNode DirectedProperty[*NodeType] `xml:"directedNode" gml:"occurs=1..1"`
}

// TopoCurveType is a topological curve expression.
type TopoCurveType struct {
	AbstractTopologyType
	DirectedEdge []DirectedProperty[*EdgeType] `xml:"directedEdge" gml:"occurs=1..*"`
}

// TopoSurfaceType is a topological surface expression.
type TopoSurfaceType struct {
	AbstractTopologyType
	DirectedFace []DirectedProperty[*FaceType] `xml:"directedFace" gml:"occurs=1..*"`
}

// TopoVolumeType is a topological volume expression.
type TopoVolumeType struct {
	AbstractTopologyType
	DirectedTopoSolid []DirectedProperty[*TopoSolidType] `xml:"directedTopoSolid" gml:"occurs=1..*"`
}

// TopoComplexType is a collection of topology primitives.
type TopoComplexType struct {
	AbstractTopologyType
	MaximalComplex       Property[*TopoComplexType]    `xml:"maximalComplex" gml:"occurs=1..1"`
	SuperComplex         []Property[*TopoComplexType]  `xml:"superComplex"`
	SubComplex           []Property[*TopoComplexType]  `xml:"subComplex"`
	TopoPrimitiveMember  []Property[TopoPrimitive]     `xml:"topoPrimitiveMember"`
	TopoPrimitiveMembers *ArrayProperty[TopoPrimitive] `xml:"topoPrimitiveMembers"`
	IsMaximal            Attr[bool]                    `xml:"isMaximal,attr"`
}

// IsMaximalValue returns isMaximal, false when unset
func (c *TopoComplexType) IsMaximalValue() bool { return c.IsMaximal.Get(false) }

// Topology properties.
type (
	DirectedNodePropertyType          = DirectedProperty[*NodeType]
	DirectedEdgePropertyType          = DirectedProperty[*EdgeType]
	DirectedFacePropertyType          = DirectedProperty[*FaceType]
	DirectedTopoSolidPropertyType     = DirectedProperty[*TopoSolidType]
	IsolatedPropertyType              = Property[TopoPrimitive]
	ContainerPropertyType             = Property[TopoPrimitive]
	TopoComplexMemberType             = Property[*TopoComplexType]
	TopoPrimitiveMemberType           = Property[TopoPrimitive]
	TopoPrimitiveArrayAssociationType = ArrayProperty[TopoPrimitive]
	TopoPointPropertyType             = Inline[*TopoPointType]
	TopoCurvePropertyType             = Inline[*TopoCurveType]
	TopoSurfacePropertyType           = Inline[*TopoSurfaceType]
	TopoVolumePropertyType            = Inline[*TopoVolumeType]
)

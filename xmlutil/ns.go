package xmlutil

// Namespaces used by GML 3.1.1 documents.
const (
	NSGML   = "http://www.opengis.net/gml"
	NSXLink = "http://www.w3.org/1999/xlink"
	NSXSI   = "http://www.w3.org/2001/XMLSchema-instance"
	NSSMIL  = "http://www.w3.org/2001/SMIL20/"
)

// Conventional prefixes for the namespaces above.
const (
	PrefixGML   = "gml"
	PrefixXLink = "xlink"
	PrefixXSI   = "xsi"
	PrefixSMIL  = "smil20"
)

package model

// AbstractCoordinateOperationBaseType is a coordinate operation
// definition named by coordinateOperationName.
type AbstractCoordinateOperationBaseType struct {
	DefinitionType
	CoordinateOperationName CodeType `xml:"coordinateOperationName" gml:"occurs=1..1"`
}

// AbstractCoordinateOperationType is the base of coordinate operations:
// changes of coordinates between reference systems.
type AbstractCoordinateOperationType struct {
	AbstractCoordinateOperationBaseType
	CoordinateOperationID []IdentifierType              `xml:"coordinateOperationID"`
	Remarks               *StringOrRefType              `xml:"remarks"`
	OperationVersion      string                        `xml:"operationVersion,omitempty"`
	ValidArea             *ExtentType                   `xml:"validArea"`
	Scope                 string                        `xml:"scope,omitempty"`
	PositionalAccuracy    []Element[PositionalAccuracy] `xml:",any"`
	SourceCRS             *Property[CRS]                `xml:"sourceCRS"`
	TargetCRS             *Property[CRS]                `xml:"targetCRS"`
}

func (o *AbstractCoordinateOperationType) AbstractCoordinateOperation() *AbstractCoordinateOperationType {
	return o
}

// AbstractSingleOperationType is the base of operations that are not
// concatenated.
type AbstractSingleOperationType struct {
	AbstractCoordinateOperationType
}

func (*AbstractSingleOperationType) isSingleOperation() {}

// AbstractOperationType is the base of conversions and transformations.
type AbstractOperationType struct {
	AbstractSingleOperationType
}

func (*AbstractOperationType) isOperation() {}

// AbstractGeneralConversionType is the base of conversions: operations
// not involving a change of datum.
type AbstractGeneralConversionType struct {
	AbstractOperationType
}

func (c *AbstractGeneralConversionType) AbstractGeneralConversion() *AbstractGeneralConversionType {
	return c
}

// AbstractGeneralTransformationType is the base of transformations:
// operations involving a change of datum.
type AbstractGeneralTransformationType struct {
	AbstractOperationType
}

func (t *AbstractGeneralTransformationType) AbstractGeneralTransformation() *AbstractGeneralTransformationType {
	return t
}

// ConversionType is a conversion by an operation method with parameter
// values.
type ConversionType struct {
	AbstractGeneralConversionType
	UsesMethod Property[*OperationMethodType] `xml:"usesMethod" gml:"occurs=1..1"`
	UsesValue  []ParameterValueType           `xml:"usesValue"`
}

// TransformationType is a transformation by an operation method with
// parameter values.
type TransformationType struct {
	AbstractGeneralTransformationType
	UsesMethod Property[*OperationMethodType] `xml:"usesMethod" gml:"occurs=1..1"`
	UsesValue  []ParameterValueType           `xml:"usesValue"`
}

// ConcatenatedOperationType is an ordered sequence of two or more single
// operations.
type ConcatenatedOperationType struct {
	AbstractCoordinateOperationType
	UsesSingleOperation []Property[SingleOperation] `xml:"usesSingleOperation" gml:"occurs=2..*"`
}

// PassThroughOperationType applies an operation to a subset of the
// coordinates.
type PassThroughOperationType struct {
	AbstractSingleOperationType
	ModifiedCoordinate []int               `xml:"modifiedCoordinate" gml:"occurs=1..*"`
	UsesOperation      Property[Operation] `xml:"usesOperation" gml:"occurs=1..1"`
}

// OperationMethodBaseType is an operation method definition named by
// methodName.
type OperationMethodBaseType struct {
	DefinitionType
	MethodName CodeType `xml:"methodName" gml:"occurs=1..1"`
}

// OperationMethodType is the algorithm of a coordinate operation.
type OperationMethodType struct {
	OperationMethodBaseType
	MethodID         []IdentifierType                      `xml:"methodID"`
	Remarks          *StringOrRefType                      `xml:"remarks"`
	MethodFormula    CodeType                              `xml:"methodFormula" gml:"occurs=1..1"`
	SourceDimensions *int                                  `xml:"sourceDimensions"`
	TargetDimensions *int                                  `xml:"targetDimensions"`
	UsesParameter    []Property[GeneralOperationParameter] `xml:"usesParameter"`
}

// AbstractGeneralOperationParameterType is the base of operation
// parameters and parameter groups.
type AbstractGeneralOperationParameterType struct {
	DefinitionType
	MinimumOccurs *int `xml:"minimumOccurs"`
}

func (p *AbstractGeneralOperationParameterType) AbstractGeneralOperationParameter() *AbstractGeneralOperationParameterType {
	return p
}

// MinimumOccursValue returns minimumOccurs, 1 when unset
func (p *AbstractGeneralOperationParameterType) MinimumOccursValue() int {
	if p.MinimumOccurs == nil {
		return 1
	}
	return *p.MinimumOccurs
}

// OperationParameterBaseType is an operation parameter named by
// parameterName.
type OperationParameterBaseType struct {
	AbstractGeneralOperationParameterType
	ParameterName CodeType `xml:"parameterName" gml:"occurs=1..1"`
}

// OperationParameterType is a parameter of an operation method.
type OperationParameterType struct {
	OperationParameterBaseType
	ParameterID []IdentifierType `xml:"parameterID"`
	Remarks     *StringOrRefType `xml:"remarks"`
}

// OperationParameterGroupBaseType is a parameter group named by
// groupName.
type OperationParameterGroupBaseType struct {
	AbstractGeneralOperationParameterType
	GroupName CodeType `xml:"groupName" gml:"occurs=1..1"`
}

// OperationParameterGroupType is a group of related parameters.
type OperationParameterGroupType struct {
	OperationParameterGroupBaseType
	GroupID           []IdentifierType                      `xml:"groupID"`
	Remarks           *StringOrRefType                      `xml:"remarks"`
	MaximumOccurs     *int                                  `xml:"maximumOccurs"`
	IncludesParameter []Property[GeneralOperationParameter] `xml:"includesParameter" gml:"occurs=2..*"`
}

// AbstractGeneralParameterValueType is the base of parameter values and
// parameter value groups.
type AbstractGeneralParameterValueType struct{}

func (*AbstractGeneralParameterValueType) isGeneralParameterValue() {}

// ParameterValueType is the value of one parameter.
type ParameterValueType struct {
	AbstractGeneralParameterValueType
	Value            *MeasureType                      `xml:"value" gml:"choice=value"`
	DMSAngleValue    *DMSAngleType                     `xml:"dmsAngleValue" gml:"choice=value"`
	StringValue      *string                           `xml:"stringValue" gml:"choice=value"`
	IntegerValue     *int                              `xml:"integerValue" gml:"choice=value"`
	BooleanValue     *bool                             `xml:"booleanValue" gml:"choice=value"`
	ValueList        *MeasureListType                  `xml:"valueList" gml:"choice=value"`
	IntegerValueList IntegerList                       `xml:"integerValueList,omitempty" gml:"choice=value"`
	ValueFile        string                            `xml:"valueFile,omitempty" gml:"choice=value"`
	ValueOfParameter Property[*OperationParameterType] `xml:"valueOfParameter" gml:"occurs=1..1"`
}

// ParameterValueGroupType is the values of a parameter group.
type ParameterValueGroupType struct {
	AbstractGeneralParameterValueType
	IncludesValue []Property[GeneralParameterValue]      `xml:"includesValue" gml:"occurs=2..*"`
	ValuesOfGroup Property[*OperationParameterGroupType] `xml:"valuesOfGroup" gml:"occurs=1..1"`
}

// Coordinate operation properties.
type (
	CoordinateOperationRefType               = Property[CoordinateOperation]
	SingleOperationRefType                   = Property[SingleOperation]
	OperationRefType                         = Property[Operation]
	GeneralConversionRefType                 = Property[GeneralConversion]
	GeneralTransformationRefType             = Property[GeneralTransformation]
	ConversionRefType                        = Property[*ConversionType]
	TransformationRefType                    = Property[*TransformationType]
	ConcatenatedOperationRefType             = Property[*ConcatenatedOperationType]
	PassThroughOperationRefType              = Property[*PassThroughOperationType]
	OperationMethodRefType                   = Property[*OperationMethodType]
	AbstractGeneralOperationParameterRefType = Property[GeneralOperationParameter]
	OperationParameterRefType                = Property[*OperationParameterType]
	OperationParameterGroupRefType           = Property[*OperationParameterGroupType]
)

// AbstractPositionalAccuracyType is the base of positional accuracy
// estimates.
type AbstractPositionalAccuracyType struct {
	MeasureDescription *CodeType `xml:"measureDescription"`
}

func (a *AbstractPositionalAccuracyType) AbstractPositionalAccuracy() *AbstractPositionalAccuracyType {
	return a
}

// AbsoluteExternalPositionalAccuracyType is the closeness of coordinates
// to values accepted as true.
type AbsoluteExternalPositionalAccuracyType struct {
	AbstractPositionalAccuracyType
	Result MeasureType `xml:"result" gml:"occurs=1..1"`
}

// RelativeInternalPositionalAccuracyType is the closeness of relative
// positions to their respective relative positions accepted as true.
type RelativeInternalPositionalAccuracyType struct {
	AbstractPositionalAccuracyType
	Result MeasureType `xml:"result" gml:"occurs=1..1"`
}

// CovarianceMatrixType is an error estimate as a covariance matrix.
type CovarianceMatrixType struct {
	AbstractPositionalAccuracyType
	UnitOfMeasure   []UnitOfMeasureType     `xml:"unitOfMeasure" gml:"occurs=1..*"`
	IncludesElement []CovarianceElementType `xml:"includesElement" gml:"occurs=1..*"`
}

// CovarianceElementType is one element of a covariance matrix.
type CovarianceElementType struct {
	RowIndex    int     `xml:"rowIndex" gml:"occurs=1..1"`
	ColumnIndex int     `xml:"columnIndex" gml:"occurs=1..1"`
	Covariance  float64 `xml:"covariance" gml:"occurs=1..1"`
}

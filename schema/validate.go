package schema

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/andaru/gml/gmlerr"
	"github.com/andaru/gml/model"
)

// Validate checks the model tree rooted at v. It returns nil if no
// constraint is violated, otherwise a gmlerr.List of every diagnostic
// found, in document order.
func Validate(v any, opts ...Option) error {
	x := &validator{
		ids:      map[string]string{},
		checked:  map[any]bool{},
		reported: map[any]bool{},
	}
	for _, opt := range opts {
		opt(x)
	}
	if err := model.Walk(v, x.visit); err != nil && err != errLimit {
		return err
	}
	glog.V(1).Infof("validated %T: %d errors, %d warnings", v,
		x.errs.Count(gmlerr.SeverityError), x.errs.Count(gmlerr.SeverityWarning))
	return x.errs.Err()
}

var errLimit = errors.New("error limit reached")

type validator struct {
	maxErrors        int
	warningsAsErrors bool

	errs gmlerr.List
	// ids maps each gml:id to the path it was first found at
	ids map[string]string
	// checked holds the values whose IsValid was called
	checked map[any]bool
	// reported holds missing properties already reported as min-occurs
	reported map[any]bool
}

func (x *validator) report(e *gmlerr.Error) {
	if x.warningsAsErrors && e.Severity == gmlerr.SeverityWarning {
		e.Severity = gmlerr.SeverityError
	}
	glog.V(2).Info(e)
	x.errs = append(x.errs, e)
}

func (x *validator) full() bool { return x.maxErrors > 0 && len(x.errs) >= x.maxErrors }

func (x *validator) visit(path string, v any) error {
	elem := elementName(path)
	x.checkID(path, elem, v)
	x.checkProperty(path, elem, v)
	x.checkValue(path, elem, false, v)
	x.checkPositions(path, elem, v)
	x.checkAxes(path, v)
	x.checkFields(path, elem, v)
	if x.full() {
		x.errs = x.errs[:x.maxErrors]
		return errLimit
	}
	return nil
}

// elementName returns the last element of path, without its position.
func elementName(path string) string {
	name := path[strings.LastIndexByte(path, '/')+1:]
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func (x *validator) checkID(path, elem string, v any) {
	if d, ok := v.(model.Definition); ok && d.GML().ID == "" {
		x.report(gmlerr.MissingAttribute("gml:id", elem, gmlerr.WithPath(path),
			gmlerr.WithMessage("a definition must be identified")))
	}
	o, ok := v.(model.Object)
	if !ok || o.GML().ID == "" {
		return
	}
	id := o.GML().ID
	if first, dup := x.ids[id]; dup {
		x.report(gmlerr.DuplicateID(id, gmlerr.WithPath(path), gmlerr.WithElement(elem),
			gmlerr.WithMessage("first used at "+first)))
		return
	}
	x.ids[id] = path
}

func (x *validator) checkProperty(path, elem string, v any) {
	isProperty, hasValue, href := model.PropertyContent(v)
	if !isProperty || x.reported[v] {
		return
	}
	switch {
	case hasValue && href != "":
		x.report(gmlerr.PropertyContent(elem, gmlerr.WithPath(path), gmlerr.WithValue(href),
			gmlerr.WithMessage("property has both a value and xlink:href")))
	case !hasValue && href == "":
		x.report(gmlerr.PropertyContent(elem, gmlerr.WithPath(path), gmlerr.WithSeverity(gmlerr.SeverityWarning),
			gmlerr.WithMessage("property has neither a value nor xlink:href")))
	}
}

type (
	validValue interface{ IsValid() bool }
	attrValue  interface{ Interface() any }
)

// checkValue reports v, or the value v points to, if its type restricts
// its values and v is not allowed.
func (x *validator) checkValue(path, name string, attr bool, v any) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() {
		if (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) && rv.IsNil() {
			return
		}
		iv := rv.Interface()
		if a, ok := iv.(attrValue); ok {
			x.checkValue(path, name, attr, a.Interface())
			return
		}
		if c, ok := iv.(validValue); ok {
			if rv.Kind() == reflect.Pointer {
				if x.checked[iv] {
					return
				}
				x.checked[iv] = true
			}
			if !c.IsValid() {
				opt := gmlerr.WithElement(name)
				if attr {
					opt = gmlerr.WithAttribute(name)
				}
				x.report(gmlerr.InvalidValue(valueString(rv), opt, gmlerr.WithPath(path),
					gmlerr.WithMessage(fmt.Sprintf("not a valid %s", rv.Type().String()))))
			}
			return
		}
		switch rv.Kind() {
		case reflect.Slice:
			for i := 0; i < rv.Len(); i++ {
				if k := rv.Index(i).Kind(); k != reflect.Struct && k != reflect.Pointer && k != reflect.Interface {
					x.checkValue(path, name, attr, rv.Index(i).Interface())
				}
			}
			return
		case reflect.Pointer, reflect.Interface:
			rv = rv.Elem()
		default:
			return
		}
	}
}

func valueString(rv reflect.Value) string {
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if m, ok := rv.Interface().(encoding.TextMarshaler); ok {
		if b, err := m.MarshalText(); err == nil {
			return string(b)
		}
	}
	return fmt.Sprint(rv.Interface())
}

// checkFields checks the cardinality of v's fields and the values of
// those not visited as elements.
func (x *validator) checkFields(path, elem string, v any) {
	type choiceGroup struct {
		fields   []model.FieldInfo
		branches map[string]bool
		optional bool
	}
	var (
		groups = map[string]*choiceGroup{}
		order  []string
	)
	for _, f := range model.Fields(v) {
		if f.Choice == "" {
			x.checkOccurs(path, elem, f, true)
			x.checkField(path, f)
			continue
		}
		g, ok := groups[f.Choice]
		if !ok {
			g = &choiceGroup{branches: map[string]bool{}}
			groups[f.Choice] = g
			order = append(order, f.Choice)
		}
		g.fields = append(g.fields, f)
		g.optional = g.optional || f.ChoiceOptional
		if f.Count > 0 {
			g.branches[f.Branch] = true
		}
	}
	for _, name := range order {
		g := groups[name]
		n := len(g.branches)
		if n > 1 || (n == 0 && !g.optional) {
			x.report(gmlerr.Choice(name, n, gmlerr.WithPath(path)))
		}
		for _, f := range g.fields {
			// the bounds of a branch apply once it is chosen
			x.checkOccurs(path, elem, f, n == 1 && g.branches[f.Branch])
			x.checkField(path, f)
		}
	}
}

func (x *validator) checkOccurs(path, elem string, f model.FieldInfo, checkMin bool) {
	switch {
	case checkMin && f.Count < f.Occurs.Min:
		if f.Attr {
			x.report(gmlerr.MissingAttribute(f.Name, elem, gmlerr.WithPath(path)))
			return
		}
		x.report(gmlerr.MinOccurs(f.Name, f.Occurs.Min, f.Count, gmlerr.WithPath(path)))
		x.reported[f.Value] = true
	case f.Occurs.Max != model.Unbounded && f.Count > f.Occurs.Max:
		x.report(gmlerr.MaxOccurs(f.Name, f.Occurs.Max, f.Count, gmlerr.WithPath(path)))
	}
}

func (x *validator) checkField(path string, f model.FieldInfo) {
	if f.Count == 0 {
		return
	}
	if f.Fixed != "" {
		x.checkFixed(path, f)
	}
	if f.Attr {
		x.checkValue(path+"/@"+f.Name, f.Name, true, f.Value)
		return
	}
	x.checkValue(path+"/"+f.Name, f.Name, false, f.Value)
}

// checkFixed reports a field holding a value other than its fixed one.
func (x *validator) checkFixed(path string, f model.FieldInfo) {
	v := f.Value
	if a, ok := v.(attrValue); ok {
		v = a.Interface()
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return
	}
	if got := valueString(rv); got != f.Fixed {
		opt, sub := gmlerr.WithElement(f.Name), "/"
		if f.Attr {
			opt, sub = gmlerr.WithAttribute(f.Name), "/@"
		}
		x.report(gmlerr.InvalidValue(got, opt, gmlerr.WithPath(path+sub+f.Name),
			gmlerr.WithMessage("fixed value is "+f.Fixed)))
	}
}

// checkPositions checks curves, rings and curve segments have as many
// positions as their type allows. An empty position list is a choice
// violation.
func (x *validator) checkPositions(path, elem string, v any) {
	var (
		cp  *model.ControlPoints
		dim = 2
		lo  int
		hi  = model.Unbounded
	)
	switch g := v.(type) {
	case *model.LineStringType:
		cp, dim, lo = &g.ControlPoints, g.SRSDimension.Get(dim), 2
	case *model.LinearRingType:
		cp, dim, lo = &g.ControlPoints, g.SRSDimension.Get(dim), 4
	case *model.LineStringSegmentType:
		cp, lo = &g.ControlPoints, 2
	case *model.ArcStringType:
		cp, lo = &g.ControlPoints, 3
	case *model.ArcType:
		cp, lo, hi = &g.ControlPoints, 3, 3
	case *model.CircleType:
		cp, lo, hi = &g.ControlPoints, 3, 3
	case *model.ArcStringByBulgeType:
		cp, lo = &g.ControlPoints, 2
	case *model.ArcByBulgeType:
		cp, lo, hi = &g.ControlPoints, 2, 2
	case *model.ArcByCenterPointType:
		cp, lo, hi = &g.ControlPoints, 1, 1
	case *model.CircleByCenterPointType:
		cp, lo, hi = &g.ControlPoints, 1, 1
	case *model.CubicSplineType:
		cp, lo = &g.ControlPoints, 2
	default:
		return
	}
	n := cp.PositionCount(dim)
	switch {
	case n == 0:
	case n < lo:
		x.report(gmlerr.TooFewPositions(elem, lo, n, gmlerr.WithPath(path)))
	case hi != model.Unbounded && n > hi:
		x.report(gmlerr.MaxOccurs("pos", hi, n, gmlerr.WithPath(path),
			gmlerr.WithMessage(fmt.Sprintf("%s has at most %d positions", elem, hi))))
	}
}

type coordinateSystem interface {
	AxisCount() model.Occurs
	AbstractCoordinateSystem() *model.AbstractCoordinateSystemType
}

// checkAxes checks a coordinate system has as many axes as its type
// allows. A coordinate system without axes is a min-occurs violation.
func (x *validator) checkAxes(path string, v any) {
	cs, ok := v.(coordinateSystem)
	if !ok {
		return
	}
	want, n := cs.AxisCount(), len(cs.AbstractCoordinateSystem().UsesAxis)
	switch {
	case n == 0:
	case n < want.Min:
		x.report(gmlerr.MinOccurs("usesAxis", want.Min, n, gmlerr.WithPath(path)))
	case want.Max != model.Unbounded && n > want.Max:
		x.report(gmlerr.MaxOccurs("usesAxis", want.Max, n, gmlerr.WithPath(path)))
	}
}

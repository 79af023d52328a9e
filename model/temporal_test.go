package model

import (
	"encoding/xml"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimePosition(t *testing.T) {
	for _, tc := range []struct {
		name    string
		pos     TimePositionType
		want    time.Time
		wantErr bool
	}{
		{
			name: "date-time",
			pos:  TimePositionType{Value: "2004-03-01T12:30:00Z"},
			want: time.Date(2004, 3, 1, 12, 30, 0, 0, time.UTC),
		},
		{name: "date", pos: TimePositionType{Value: " 2004-03-01 "}, want: time.Date(2004, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "year", pos: TimePositionType{Value: "1999"}, want: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "explicit default frame", pos: TimePositionType{Frame: NewAttr(DefaultFrame), Value: "2001-02"}, want: time.Date(2001, 2, 1, 0, 0, 0, 0, time.UTC)},
		{name: "other frame", pos: TimePositionType{Frame: NewAttr("#GPS"), Value: "12345"}, wantErr: true},
		{name: "indeterminate", pos: TimePositionType{IndeterminatePosition: TimeNow}, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			a := assert.New(t)
			got, err := tc.pos.Time()
			if tc.wantErr {
				a.Error(err)
				return
			}
			a.NoError(err)
			a.True(tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}

	ts := time.Date(2020, 5, 6, 7, 8, 9, 0, time.UTC)
	pos := NewTimePosition(ts)
	got, err := pos.Time()
	assert.NoError(t, err)
	assert.True(t, ts.Equal(got))
	assert.False(t, pos.Frame.IsSet())
	assert.Equal(t, DefaultFrame, pos.FrameValue())
}

func TestTimePeriodDecode(t *testing.T) {
	a := assert.New(t)
	input := `<TimePeriod xmlns="http://www.opengis.net/gml" frame="#ISO-8601">
  <begin><TimeInstant><timePosition>2001-01-01</timePosition></TimeInstant></begin>
  <endPosition indeterminatePosition="now"/>
  <timeInterval unit="day" radix="10" factor="-1">15</timeInterval>
</TimePeriod>`
	var p TimePeriodType
	require.NoError(t, xml.Unmarshal([]byte(input), &p))
	a.True(p.Frame.IsSet())
	require.NotNil(t, p.Begin)
	a.Equal("2001-01-01", p.Begin.Value.TimePosition.Value)
	require.NotNil(t, p.EndPosition)
	a.Equal(TimeNow, p.EndPosition.IndeterminatePosition)
	require.NotNil(t, p.TimeInterval)
	a.Equal(TimeUnitType("day"), p.TimeInterval.Unit)
	a.Equal(10, p.TimeInterval.Radix.Get(0))
	a.Equal(-1, p.TimeInterval.Factor.Get(0))
	a.Equal(15.0, p.TimeInterval.Value)
}

func TestDMSAngle(t *testing.T) {
	minutes := ArcMinutesType(30)
	seconds := ArcSecondsType(36)
	decimal := DecimalMinutesType(45)
	for _, tc := range []struct {
		name  string
		angle DMSAngleType
		want  float64
	}{
		{name: "degrees", angle: DMSAngleType{Degrees: DegreesType{Value: 12}}, want: 12},
		{name: "dms", angle: DMSAngleType{Degrees: DegreesType{Direction: "N", Value: 51}, Minutes: &minutes, Seconds: &seconds}, want: 51.51},
		{name: "decimal minutes west", angle: DMSAngleType{Degrees: DegreesType{Direction: "W", Value: 1}, DecimalMinutes: &decimal}, want: -1.75},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.angle.Decimal(), 1e-9)
		})
	}

	assert.True(t, DegreesType{Direction: "E", Value: 359}.IsValid())
	assert.False(t, DegreesType{Direction: "X", Value: 1}.IsValid())
	assert.False(t, DegreesType{Value: 360}.IsValid())
}

package solarterm

import "github.com/roach88/saju/internal/ganzhi"

// Term is one of the 24 solar terms. Content (key, names, longitude) is
// fixed and independent of year.
type Term struct {
	// Index is the position in cyclical order, 0 = Minor Cold.
	Index int `json:"index"`

	// Key is the stable machine identifier.
	Key string `json:"key"`

	// Name is the English name.
	Name string `json:"name"`

	// Korean and Hanja are the traditional labels.
	Korean string `json:"korean"`
	Hanja  string `json:"hanja"`

	// Longitude is the defining solar ecliptic longitude in degrees.
	Longitude int `json:"longitude"`

	// Principal marks the 12 month-opening terms (절기). Every other term,
	// starting at Minor Cold, opens a pillar month.
	Principal bool `json:"principal"`
}

// Count is the number of solar terms.
const Count = 24

// Terms lists all 24 terms in cyclical order starting at longitude 285.
// Even indices are the principal (month-opening) terms.
var Terms = [Count]Term{
	{0, "minor_cold", "Minor Cold", "소한", "小寒", 285, true},
	{1, "major_cold", "Major Cold", "대한", "大寒", 300, false},
	{2, "spring_begins", "Spring Begins", "입춘", "立春", 315, true},
	{3, "rain_water", "Rain Water", "우수", "雨水", 330, false},
	{4, "insects_awaken", "Insects Awaken", "경칩", "驚蟄", 345, true},
	{5, "vernal_equinox", "Vernal Equinox", "춘분", "春分", 0, false},
	{6, "clear_and_bright", "Clear and Bright", "청명", "淸明", 15, true},
	{7, "grain_rain", "Grain Rain", "곡우", "穀雨", 30, false},
	{8, "summer_begins", "Summer Begins", "입하", "立夏", 45, true},
	{9, "grain_full", "Grain Full", "소만", "小滿", 60, false},
	{10, "grain_in_ear", "Grain in Ear", "망종", "芒種", 75, true},
	{11, "summer_solstice", "Summer Solstice", "하지", "夏至", 90, false},
	{12, "minor_heat", "Minor Heat", "소서", "小暑", 105, true},
	{13, "major_heat", "Major Heat", "대서", "大暑", 120, false},
	{14, "autumn_begins", "Autumn Begins", "입추", "立秋", 135, true},
	{15, "end_of_heat", "End of Heat", "처서", "處暑", 150, false},
	{16, "white_dew", "White Dew", "백로", "白露", 165, true},
	{17, "autumnal_equinox", "Autumnal Equinox", "추분", "秋分", 180, false},
	{18, "cold_dew", "Cold Dew", "한로", "寒露", 195, true},
	{19, "frost_descent", "Frost Descent", "상강", "霜降", 210, false},
	{20, "winter_begins", "Winter Begins", "입동", "立冬", 225, true},
	{21, "minor_snow", "Minor Snow", "소설", "小雪", 240, false},
	{22, "major_snow", "Major Snow", "대설", "大雪", 255, true},
	{23, "winter_solstice", "Winter Solstice", "동지", "冬至", 270, false},
}

// ByKey resolves a term by its stable key. The boolean is false for
// unknown keys.
func ByKey(key string) (Term, bool) {
	for _, t := range Terms {
		if t.Key == key {
			return t, true
		}
	}
	return Term{}, false
}

// AtLongitude returns the term whose defining longitude is the largest value
// less than or equal to lon, wrapping at 360. An exact match resolves to
// that term (non-strict boundary).
func AtLongitude(lon float64) Term {
	offset := lon - 285
	for offset < 0 {
		offset += 360
	}
	idx := ganzhi.Mod(int(offset/15), Count)
	return Terms[idx]
}

// Next returns the term following t in cyclical order.
func (t Term) Next() Term {
	return Terms[ganzhi.Mod(t.Index+1, Count)]
}

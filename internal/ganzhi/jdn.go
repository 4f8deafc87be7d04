package ganzhi

// Julian Day Number arithmetic over the proleptic Gregorian calendar,
// using the integer-division formulas published by the US Naval Observatory.
// All divisions are Go integer divisions; the formulas are written to stay
// correct for the negative intermediate terms they produce.

// dayPillarOffset calibrates the day-pillar cycle against JDN so that
// JDN 2451545 (2000-01-01 Gregorian, noon) maps to index 54, the
// historically agreed 戊午 day.
const dayPillarOffset = 49

// JDN returns the Julian Day Number for a proleptic Gregorian calendar date.
func JDN(year, month, day int) int {
	return day - 32075 +
		1461*(year+4800+(month-14)/12)/4 +
		367*(month-2-(month-14)/12*12)/12 -
		3*((year+4900+(month-14)/12)/100)/4
}

// DateFromJDN inverts JDN, returning the proleptic Gregorian (year, month, day).
func DateFromJDN(jdn int) (year, month, day int) {
	l := jdn + 68569
	n := 4 * l / 146097
	l = l - (146097*n+3)/4
	i := 4000 * (l + 1) / 1461001
	l = l - 1461*i/4 + 31
	j := 80 * l / 2447
	day = l - 2447*j/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return year, month, day
}

// DayPillarIndex returns the sexagenary index of the day pillar for a JDN.
func DayPillarIndex(jdn int) int {
	return Mod(jdn+dayPillarOffset, CycleLen)
}

// YearPillarIndex returns the sexagenary index of the cycle year. 1984 is
// the reference 甲子 year (index 0); the caller is responsible for passing
// the effective solar year (Li Chun boundary already applied).
func YearPillarIndex(year int) int {
	return Mod(year-1984, CycleLen)
}

// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package holidays

import "time"

// Catalog returns the built-in holiday catalog. The catalog follows US
// conventions for the floating civic holidays and western church
// conventions for the Easter cycle. Its order is stable and is used to
// break ties between holidays that fall on the same day. Callers must
// treat the returned list as read-only.
func Catalog() List {
	return builtin
}

var builtin = List{
	// Bank and national holidays.
	{Name: "New Year's Day", Category: Bank, Emoji: "🎉", Tag: "new year", Recurring: true,
		Description: "First day of the Gregorian calendar year.",
		Date:        FixedDate{Month: 1, Day: 1}},
	{Name: "Martin Luther King Jr. Day", Category: Bank, Tag: "mlk", Recurring: true,
		Description: "Honors the civil rights leader, observed on the third Monday of January.",
		Date:        NthWeekday{Month: 1, Weekday: time.Monday, N: 3}},
	{Name: "Presidents' Day", Category: Bank, Tag: "presidents", Recurring: true,
		Description: "Washington's birthday, observed on the third Monday of February.",
		Date:        NthWeekday{Month: 2, Weekday: time.Monday, N: 3}},
	{Name: "Memorial Day", Category: Bank, Emoji: "🇺🇸", Tag: "memorial", Recurring: true,
		Description: "Honors fallen service members, observed on the last Monday of May.",
		Date:        NthWeekday{Month: 5, Weekday: time.Monday, N: 1, FromEnd: true}},
	{Name: "Juneteenth", Category: Bank, Tag: "juneteenth", Recurring: true,
		Description: "Commemorates the end of slavery in the United States.",
		Date:        FixedDate{Month: 6, Day: 19}},
	{Name: "Independence Day", Category: Bank, Emoji: "🎆", Tag: "fireworks", Recurring: true,
		Description: "Commemorates the Declaration of Independence.",
		Date:        FixedDate{Month: 7, Day: 4}},
	{Name: "Labor Day", Category: Bank, Tag: "labor", Recurring: true,
		Description: "Celebrates workers, observed on the first Monday of September.",
		Date:        NthWeekday{Month: 9, Weekday: time.Monday, N: 1}},
	{Name: "Columbus Day", Category: Bank, Tag: "columbus", Recurring: true,
		Description: "Observed on the second Monday of October.",
		Date:        NthWeekday{Month: 10, Weekday: time.Monday, N: 2}},
	{Name: "Veterans Day", Category: Bank, Tag: "veterans", Recurring: true,
		Description: "Honors military veterans.",
		Date:        FixedDate{Month: 11, Day: 11}},
	{Name: "Thanksgiving", Category: Bank, Emoji: "🦃", Tag: "thanksgiving", Recurring: true,
		Description: "Observed on the fourth Thursday of November.",
		Date:        NthWeekday{Month: 11, Weekday: time.Thursday, N: 4}},
	{Name: "Christmas Day", Category: Bank, Emoji: "🎄", Tag: "christmas", Recurring: true,
		Description: "Celebrates the birth of Jesus Christ.",
		Date:        FixedDate{Month: 12, Day: 25}},

	// Religious holidays, mostly the western Easter cycle.
	{Name: "Epiphany", Category: Religious, Tag: "epiphany", Recurring: true,
		Description: "Twelfth day of Christmas.",
		Date:        FixedDate{Month: 1, Day: 6}},
	{Name: "Mardi Gras", Category: Religious, Emoji: "🎭", Tag: "carnival", Recurring: true,
		Description: "Shrove Tuesday, the day before Ash Wednesday.",
		Date:        EasterOffset{Days: -47}},
	{Name: "Ash Wednesday", Category: Religious, Tag: "lent", Recurring: true,
		Description: "First day of Lent.",
		Date:        EasterOffset{Days: -46}},
	{Name: "Palm Sunday", Category: Religious, Tag: "palm", Recurring: true,
		Description: "Sunday before Easter.",
		Date:        EasterOffset{Days: -7}},
	{Name: "Good Friday", Category: Religious, Tag: "good friday", Recurring: true,
		Description: "Friday before Easter Sunday.",
		Date:        EasterOffset{Days: -2}},
	{Name: "Easter Sunday", Category: Religious, Emoji: "🐰", Tag: "easter", Recurring: true,
		Description: "Celebrates the resurrection, on the first Sunday after the paschal full moon.",
		Date:        EasterOffset{}},
	{Name: "Easter Monday", Category: Religious, Tag: "easter", Recurring: true,
		Description: "Day after Easter Sunday.",
		Date:        EasterOffset{Days: 1}},
	{Name: "Ascension Day", Category: Religious, Tag: "ascension", Recurring: true,
		Description: "Thirty-nine days after Easter Sunday.",
		Date:        EasterOffset{Days: 39}},
	{Name: "Pentecost", Category: Religious, Tag: "pentecost", Recurring: true,
		Description: "Forty-nine days after Easter Sunday.",
		Date:        EasterOffset{Days: 49}},
	{Name: "All Saints' Day", Category: Religious, Tag: "saints", Recurring: true,
		Description: "Honors all saints of the church.",
		Date:        FixedDate{Month: 11, Day: 1}},
	{Name: "Christmas Eve", Category: Religious, Emoji: "🌟", Tag: "christmas", Recurring: true,
		Description: "Evening before Christmas Day.",
		Date:        FixedDate{Month: 12, Day: 24}},

	// Social and cultural observances.
	{Name: "Groundhog Day", Category: Cultural, Tag: "groundhog", Recurring: true,
		Description: "Folklore weather prediction day.",
		Date:        FixedDate{Month: 2, Day: 2}},
	{Name: "Valentine's Day", Category: Cultural, Emoji: "❤️", Tag: "love", Recurring: true,
		Description: "Celebration of romance and affection.",
		Date:        FixedDate{Month: 2, Day: 14}},
	{Name: "St. Patrick's Day", Category: Cultural, Emoji: "☘️", Tag: "irish", Recurring: true,
		Description: "Irish cultural and religious celebration.",
		Date:        FixedDate{Month: 3, Day: 17}},
	{Name: "April Fools' Day", Category: Cultural, Tag: "pranks", Recurring: true,
		Description: "Day of practical jokes.",
		Date:        FixedDate{Month: 4, Day: 1}},
	{Name: "Earth Day", Category: Cultural, Emoji: "🌍", Tag: "environment", Recurring: true,
		Description: "Demonstrates support for environmental protection.",
		Date:        FixedDate{Month: 4, Day: 22}},
	{Name: "Mother's Day", Category: Cultural, Emoji: "💐", Tag: "mother", Recurring: true,
		Description: "Honors mothers, observed on the second Sunday of May.",
		Date:        NthWeekday{Month: 5, Weekday: time.Sunday, N: 2}},
	{Name: "Father's Day", Category: Cultural, Tag: "father", Recurring: true,
		Description: "Honors fathers, observed on the third Sunday of June.",
		Date:        NthWeekday{Month: 6, Weekday: time.Sunday, N: 3}},
	{Name: "Halloween", Category: Cultural, Emoji: "🎃", Tag: "spooky", Recurring: true,
		Description: "Eve of All Saints' Day.",
		Date:        FixedDate{Month: 10, Day: 31}},
	{Name: "New Year's Eve", Category: Cultural, Emoji: "🥳", Tag: "new year", Recurring: true,
		Description: "Last day of the Gregorian calendar year.",
		Date:        FixedDate{Month: 12, Day: 31}},

	// Seasonal markers; approximate dates, see AstronomicalApproximation.
	{Name: "Spring Equinox", Category: Seasonal, Emoji: "🌸", Tag: "spring", Recurring: true,
		Description: "Approximate March equinox.",
		Date:        AstronomicalApproximation{Season: Spring}},
	{Name: "Summer Solstice", Category: Seasonal, Emoji: "☀️", Tag: "summer", Recurring: true,
		Description: "Approximate June solstice, the longest day of the year.",
		Date:        AstronomicalApproximation{Season: Summer}},
	{Name: "Autumn Equinox", Category: Seasonal, Emoji: "🍂", Tag: "autumn", Recurring: true,
		Description: "Approximate September equinox.",
		Date:        AstronomicalApproximation{Season: Autumn}},
	{Name: "Winter Solstice", Category: Seasonal, Emoji: "❄️", Tag: "winter", Recurring: true,
		Description: "Approximate December solstice, the shortest day of the year.",
		Date:        AstronomicalApproximation{Season: Winter}},

	// Educational observances.
	{Name: "National Teacher Day", Category: Educational, Emoji: "🍎", Tag: "teacher", Recurring: true,
		Description: "Honors teachers, observed on the first Tuesday of May.",
		Date:        NthWeekday{Month: 5, Weekday: time.Tuesday, N: 1}},
	{Name: "World Book Day", Category: Educational, Emoji: "📚", Tag: "books", Recurring: true,
		Description: "UNESCO day promoting reading and publishing.",
		Date:        FixedDate{Month: 4, Day: 23}},
	{Name: "International Literacy Day", Category: Educational, Tag: "literacy", Recurring: true,
		Description: "UNESCO day highlighting the importance of literacy.",
		Date:        FixedDate{Month: 9, Day: 8}},

	// Other.
	{Name: "Tax Day", Category: Other, Tag: "taxes", Recurring: true,
		Description: "Typical deadline for filing US federal income tax returns.",
		Date:        FixedDate{Month: 4, Day: 15}},
	{Name: "Leap Day", Category: Other, Tag: "leap", Recurring: true,
		Description: "February 29th, occurring only in leap years.",
		Date:        FixedDate{Month: 2, Day: 29}},
}

package calendar

// DayCell is one cell of a month grid. Cells borrowed from the
// adjacent month carry IsCurrentMonth=false; the renderer dims them
// but they still receive events.
type DayCell struct {
	Day            int  `json:"day"`
	Month          int  `json:"month"`
	Year           int  `json:"year"`
	IsCurrentMonth bool `json:"isCurrentMonth"`
}

// ComputeMonthGrid lays out a month as rows of seven cells, week-major
// and Sunday-first. Leading cells borrow the trailing days of the
// previous month and trailing cells the leading days of the next. The
// grid has 4, 5, or 6 rows depending on where the month starts and how
// long it is.
func ComputeMonthGrid(year, month int) [][]DayCell {
	firstWeekday := DayOfWeek(year, month, 1)
	numDays := DaysInMonth(year, month)

	totalCells := 42
	switch {
	case firstWeekday+numDays <= 28:
		totalCells = 28
	case firstWeekday+numDays <= 35:
		totalCells = 35
	}

	prevMonth, prevYear := month-1, year
	if prevMonth < 0 {
		prevMonth, prevYear = 11, year-1
	}
	nextMonth, nextYear := month+1, year
	if nextMonth > 11 {
		nextMonth, nextYear = 0, year+1
	}
	prevDays := DaysInMonth(prevYear, prevMonth)

	cells := make([]DayCell, 0, totalCells)
	for i := 0; i < totalCells; i++ {
		switch {
		case i < firstWeekday:
			cells = append(cells, DayCell{
				Day:   prevDays - firstWeekday + 1 + i,
				Month: prevMonth,
				Year:  prevYear,
			})
		case i < firstWeekday+numDays:
			cells = append(cells, DayCell{
				Day:            i - firstWeekday + 1,
				Month:          month,
				Year:           year,
				IsCurrentMonth: true,
			})
		default:
			cells = append(cells, DayCell{
				Day:   i - firstWeekday - numDays + 1,
				Month: nextMonth,
				Year:  nextYear,
			})
		}
	}

	rows := make([][]DayCell, 0, totalCells/7)
	for i := 0; i < totalCells; i += 7 {
		rows = append(rows, cells[i:i+7])
	}
	return rows
}

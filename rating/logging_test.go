package rating

import "testing"

func TestLoggerAccumulatesReport(t *testing.T) {
	l := NewLogger(false)
	l.cycle(0)
	l.phase(0, 12, 0.5, 1.2)
	l.whiteAdvantage(28.4)
	l.drawRate(0.31)
	l.superPlayer("Alice", 3, SuperWinner, 2650)
	l.done()

	report := l.Report.String()
	if report == "" {
		t.Fatalf("Logger.Report is empty after a full sequence of calls")
	}
	if l.Verbose {
		t.Fatalf("Verbose should be false when NewLogger(false) was used")
	}
}

func TestLoggerSuperPlayerFallsBackToIndexWhenNameEmpty(t *testing.T) {
	l := NewLogger(false)
	l.superPlayer("", 7, SuperLoser, 1400)
	report := l.Report.String()
	if report == "" {
		t.Fatalf("Logger.Report should record the fallback label")
	}
}

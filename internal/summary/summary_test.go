package summary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/fittracker/internal/workout"
)

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.0, "1.000"},
		{0, "0.000"},
		{336, "336.000"},
		{0.9936, "0.994"},
		{1.2345, "1.234"}, // stored just below the tie
		{2.5625, "2.562"}, // exact tie, rounds to even
		{0.1875, "0.188"}, // exact tie, rounds to even
		{-9.75, "-9.750"},
		{12345.6789, "12345.679"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFixed(tt.in), "FormatFixed(%v)", tt.in)
	}
}

func TestFormatFixedNegativeZero(t *testing.T) {
	negZero := 0.0
	negZero = -negZero
	assert.Equal(t, "0.000", FormatFixed(negZero))
}

func TestMessageScenarios(t *testing.T) {
	tests := []struct {
		name string
		w    workout.Workout
		want string
	}{
		{
			name: "swimming",
			w:    workout.NewSwimming(720, 1, 80, 25, 40),
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			name: "running",
			w:    workout.NewRunning(15000, 1, 75),
			want: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 797.805.",
		},
		{
			name: "walking",
			w:    workout.NewWalking(9000, 1, 75, 180),
			want: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 349.252.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.w)
			require.NoError(t, err)
			require.Equal(t, tt.want, s.Message(Russian))
			require.Equal(t, tt.want, s.String())
		})
	}
}

func TestMessageEnglish(t *testing.T) {
	s, err := New(workout.NewRunning(15000, 1, 75))
	require.NoError(t, err)

	want := "Training type: Running; Duration: 1.000 h; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories burned: 797.805."
	require.Equal(t, want, s.Message(English))
}

func TestMessageFieldOrder(t *testing.T) {
	s := Summary{TrainingType: "Running", Duration: 1, Distance: 2, Speed: 3, Calories: 4}
	msg := s.Message(English)

	parts := strings.Split(msg, "; ")
	require.Len(t, parts, 5)
	require.Contains(t, parts[0], "Running")
	require.Contains(t, parts[1], "1.000")
	require.Contains(t, parts[2], "2.000")
	require.Contains(t, parts[3], "3.000")
	require.Contains(t, parts[4], "4.000")
}

func TestNewPropagatesDivisionByZero(t *testing.T) {
	_, err := New(workout.NewWalking(9000, 0, 75, 180))
	require.ErrorIs(t, err, workout.ErrDivisionByZero)
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		prefs []string
		want  Locale
	}{
		{nil, Russian},
		{[]string{""}, Russian},
		{[]string{"ru"}, Russian},
		{[]string{"ru-RU"}, Russian},
		{[]string{"en"}, English},
		{[]string{"en-GB"}, English},
		{[]string{"fr-FR,en;q=0.8"}, English},
		{[]string{"not a tag"}, Russian},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLocale(tt.prefs...), "prefs %q", tt.prefs)
	}
}

func TestLocaleString(t *testing.T) {
	assert.Equal(t, "ru", Russian.String())
	assert.Equal(t, "en", English.String())
	assert.Equal(t, "ru", Locale(42).String())
}

package homgar

import (
	"math/rand"
	"testing"
	"time"
)

func TestDecodeT4Date(t *testing.T) {
	tests := []struct {
		name string
		raw  uint32
		want T4Date
	}{
		{
			name: "all zero fields",
			raw:  0,
			want: T4Date{Year: 2020},
		},
		{
			name: "2021-03-04 05:06:07",
			raw:  7 | 6<<6 | 5<<12 | 4<<17 | 3<<22 | 1<<26,
			want: T4Date{Second: 7, Minute: 6, Hour: 5, Day: 4, Month: 3, Year: 2021},
		},
		{
			name: "max field values",
			raw:  0xFFFFFFFF,
			want: T4Date{Second: 63, Minute: 63, Hour: 31, Day: 31, Month: 15, Year: 2083},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeT4Date(tt.raw); got != tt.want {
				t.Errorf("DecodeT4Date(%#x) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestT4Date_EncodeRoundTrip(t *testing.T) {
	// 正規の範囲のフィールドなら Encode/Decode で元の6フィールドに戻る
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		want := T4Date{
			Second: rng.Intn(60),
			Minute: rng.Intn(60),
			Hour:   rng.Intn(24),
			Day:    rng.Intn(31) + 1,
			Month:  rng.Intn(12) + 1,
			Year:   T4DateBaseYear + rng.Intn(64),
		}
		if got := DecodeT4Date(want.Encode()); got != want {
			t.Fatalf("round trip: got %v, want %v", got, want)
		}
	}
}

func TestNewT4Date(t *testing.T) {
	d := NewT4Date()
	if d.Year != 2020 || d.Month != 0 || d.Day != 0 || d.Hour != 0 || d.Minute != 0 || d.Second != 0 {
		t.Errorf("NewT4Date() = %v, want 2020 sentinel", d)
	}
}

func TestT4Date_String(t *testing.T) {
	d := T4Date{Second: 7, Minute: 6, Hour: 5, Day: 4, Month: 3, Year: 2021}
	if got := d.String(); got != "2021-03-04 05:06:07" {
		t.Errorf("String() = %q", got)
	}
}

func TestT4Date_Compare(t *testing.T) {
	earlier := T4Date{Day: 1, Month: 5, Year: 2021}
	later := T4Date{Second: 1, Day: 1, Month: 5, Year: 2021}
	if !earlier.Before(later) {
		t.Error("Before() = false, want true")
	}
	if later.Before(earlier) {
		t.Error("Before() = true, want false")
	}
	if earlier.Compare(earlier) != 0 {
		t.Error("Compare() with itself should be 0")
	}
	// 桁上がりをまたいでも文字列比較は時系列順になる
	if !later.Before(T4Date{Day: 2, Month: 5, Year: 2021}) {
		t.Error("Before() across day boundary = false, want true")
	}
}

func TestT4Date_Timestamp(t *testing.T) {
	d := T4Date{Second: 30, Minute: 15, Hour: 10, Day: 1, Month: 5, Year: 2026}
	got, err := d.Timestamp(time.UTC)
	if err != nil {
		t.Fatalf("Timestamp() error = %v", err)
	}
	want := time.Date(2026, 5, 1, 10, 15, 30, 0, time.UTC).UnixMilli()
	if got != want {
		t.Errorf("Timestamp() = %d, want %d", got, want)
	}

	dateMillis, err := d.DateTimestamp(time.UTC)
	if err != nil {
		t.Fatalf("DateTimestamp() error = %v", err)
	}
	wantDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	if dateMillis != wantDate {
		t.Errorf("DateTimestamp() = %d, want %d", dateMillis, wantDate)
	}
}

func TestT4Date_TimestampInvalidFields(t *testing.T) {
	tests := []struct {
		name string
		date T4Date
	}{
		{name: "sentinel (month 0)", date: NewT4Date()},
		{name: "day 0", date: T4Date{Month: 5, Year: 2021}},
		{name: "month 13", date: T4Date{Day: 1, Month: 13, Year: 2021}},
		{name: "hour 25", date: T4Date{Day: 1, Month: 5, Year: 2021, Hour: 25}},
		{name: "second 61", date: T4Date{Day: 1, Month: 5, Year: 2021, Second: 61}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.date.Timestamp(time.UTC); err == nil {
				t.Errorf("Timestamp(%v) expected error", tt.date)
			}
		})
	}
}

func TestT4Date_JSON(t *testing.T) {
	d := T4Date{Second: 7, Minute: 6, Hour: 5, Day: 4, Month: 3, Year: 2021}
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"2021-03-04 05:06:07"` {
		t.Errorf("MarshalJSON() = %s", data)
	}
	var parsed T4Date
	if err := parsed.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if parsed != d {
		t.Errorf("UnmarshalJSON() = %v, want %v", parsed, d)
	}
}

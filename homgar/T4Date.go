package homgar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// T4Date はファームウェアが使う32bitパック形式の日時を表します。
// 年は2020年を基点とする6bit値で、常に 2020 以上になります。
//
// ビットレイアウト (LSBから):
//
//	秒 6bit / 分 6bit / 時 5bit / 日 5bit / 月 4bit / 年 6bit
type T4Date struct {
	Second int
	Minute int
	Hour   int
	Day    int
	Month  int
	Year   int
}

// T4DateBaseYear はパック形式の年フィールドの基点
const T4DateBaseYear = 2020

// NewT4Date は「未設定」を表す番兵値（2020年、他フィールド全て0）を返します。
func NewT4Date() T4Date {
	return T4Date{Year: T4DateBaseYear}
}

// DecodeT4Date は32bitパック値から T4Date を復元します。
func DecodeT4Date(raw uint32) T4Date {
	return T4Date{
		Second: int(raw & 0x3F),
		Minute: int((raw >> 6) & 0x3F),
		Hour:   int((raw >> 12) & 0x1F),
		Day:    int((raw >> 17) & 0x1F),
		Month:  int((raw >> 22) & 0xF),
		Year:   int((raw>>26)&0x3F) + T4DateBaseYear,
	}
}

// Encode は T4Date を32bitパック値に変換します。DecodeT4Date の逆変換です。
func (t T4Date) Encode() uint32 {
	return uint32(t.Second&0x3F) |
		uint32(t.Minute&0x3F)<<6 |
		uint32(t.Hour&0x1F)<<12 |
		uint32(t.Day&0x1F)<<17 |
		uint32(t.Month&0xF)<<22 |
		uint32((t.Year-T4DateBaseYear)&0x3F)<<26
}

func (t T4Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second)
}

// Compare はゼロ埋めした文字列表現の辞書順で比較します。
// フィールドが正規の範囲内であれば時系列順と一致します。
func (t T4Date) Compare(other T4Date) int {
	return strings.Compare(t.String(), other.String())
}

func (t T4Date) Before(other T4Date) bool {
	return t.Compare(other) < 0
}

// Time は6フィールドからカレンダー時刻を組み立てます。loc が nil のときはホストの
// ローカルゾーンを使います。2つの Time 変換値の差を取る場合は両方に同じ loc を
// 渡すこと（ゾーン差が打ち消し合う前提のコードがあるため）。
// 月0や日0などカレンダー上存在しないフィールド値はエラーになります。
func (t T4Date) Time(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	ct := time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, t.Second, 0, loc)
	// time.Date は範囲外の値を正規化してしまうので、往復で一致するか確認する
	if ct.Year() != t.Year || int(ct.Month()) != t.Month || ct.Day() != t.Day ||
		ct.Hour() != t.Hour || ct.Minute() != t.Minute || ct.Second() != t.Second {
		return time.Time{}, fmt.Errorf("invalid calendar fields: %s", t)
	}
	return ct, nil
}

// Timestamp はエポックからのミリ秒を返します。
func (t T4Date) Timestamp(loc *time.Location) (int64, error) {
	ct, err := t.Time(loc)
	if err != nil {
		return 0, err
	}
	return ct.UnixMilli(), nil
}

// DateTimestamp は時刻部分をゼロにした日付のみのエポックミリ秒を返します。
func (t T4Date) DateTimestamp(loc *time.Location) (int64, error) {
	day := T4Date{Year: t.Year, Month: t.Month, Day: t.Day}
	return day.Timestamp(loc)
}

// MarshalJSON は T4Date を "YYYY-MM-DD hh:mm:ss" 形式のJSON文字列にエンコードします。
func (t T4Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON は "YYYY-MM-DD hh:mm:ss" 形式のJSON文字列から T4Date をデコードします。
func (t *T4Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("T4Date should be a string, got %s: %w", data, err)
	}
	var parsed T4Date
	n, err := fmt.Sscanf(s, "%04d-%02d-%02d %02d:%02d:%02d",
		&parsed.Year, &parsed.Month, &parsed.Day, &parsed.Hour, &parsed.Minute, &parsed.Second)
	if err != nil || n != 6 {
		return fmt.Errorf("invalid T4Date string %q", s)
	}
	*t = parsed
	return nil
}

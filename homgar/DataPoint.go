package homgar

import (
	"fmt"
	"strconv"
	"strings"
)

// DataPoint はステータス文字列から取り出した1レコード（id, 型コード, 長さ, 値）を表します。
// Value の先頭は制御バイトで、ペイロードは Value[1:] 側にあります。
type DataPoint struct {
	ID     int    // data point id（idプレフィックス付きモードのときのみ有効）
	Code   int    // 型コード。StatusCode の値と突き合わせる
	Length int    // ペイロード長（バイト数）
	Value  []byte // 制御バイトを含む生の値
}

func (d DataPoint) String() string {
	return fmt.Sprintf("DataPoint(id=%d, code=%d, len=%d, value=%X)", d.ID, d.Code, d.Length, d.Value)
}

// Equal は id, 型コード, 長さの一致を判定します。Value は比較に含めません。
func (d DataPoint) Equal(other DataPoint) bool {
	return d.ID == other.ID && d.Code == other.Code && d.Length == other.Length
}

// decodeHexPayload は16進文字列をバイト列に変換します。
// 最初のカンマ以降は破棄し、余った奇数桁は無視します。
func decodeHexPayload(hexStr string) ([]byte, error) {
	if i := strings.IndexByte(hexStr, ','); i != -1 {
		hexStr = hexStr[:i]
	}
	length := len(hexStr) / 2
	data := make([]byte, length)
	for i := 0; i < length; i++ {
		pos := i * 2
		b, err := strconv.ParseUint(hexStr[pos:pos+2], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid hex byte %q at %d: %w", hexStr[pos:pos+2], pos, err)
		}
		data[i] = byte(b)
	}
	return data, nil
}

// DecodeDataPoints はステータス文字列のペイロード部をレコード列にデコードします。
// idPrefixed のときは各レコードの先頭に1バイトの data point id が付きます。
//
// ワイヤフォーマット（制御バイト b）:
//   - 最上位ビット 0: 型コード=(b>>4)&7, ペイロード1バイト（制御バイト自身）
//   - 最上位ビット 1: part=(b>>2)&0x1F, ペイロード長=(b&3)+1
//     part<=30 のとき型コード=part+8。part==31 のときは拡張バイトが続き、型コード=拡張バイト+39
//
// ショート形式はレコードごとにカーソルが1バイト余分に進む（part==31 も同様）。
// 実機ファームウェアの挙動に合わせてそのまま再現している。修正しないこと。
func DecodeDataPoints(hexStr string, idPrefixed bool) ([]DataPoint, error) {
	result := []DataPoint{}
	if hexStr == "" {
		return result, nil
	}
	data, err := decodeHexPayload(hexStr)
	if err != nil {
		return nil, err
	}
	length := len(data)

	i := 0
	for i < length {
		var dp DataPoint

		if idPrefixed {
			dp.ID = int(data[i])
			i++
			if i >= length {
				return nil, fmt.Errorf("truncated record: id byte at end of buffer (offset %d)", i-1)
			}
		}

		b := data[i]
		if (b>>7)&1 == 0 {
			dp.Code = int((b >> 4) & 7)
			dp.Length = 1
			dp.Value = []byte{b}
			i++
		} else {
			part := int((b >> 2) & 31)
			lenBytes := int(b&3) + 1
			dp.Length = lenBytes

			if part <= 30 {
				dp.Code = part + 8
				dp.Value = data[i:clamp(i+lenBytes+1, length)]
				i += lenBytes
			} else {
				i++
				if i >= length {
					return nil, fmt.Errorf("truncated record: missing extended code byte (offset %d)", i)
				}
				dp.Code = int(data[i]) + 39
				dp.Value = data[i-1 : clamp(i+lenBytes, length)]
				i += lenBytes
			}
		}

		result = append(result, dp)
		i++
	}

	return result, nil
}

func clamp(n, max int) int {
	if n > max {
		return max
	}
	return n
}

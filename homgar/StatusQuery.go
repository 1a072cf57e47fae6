package homgar

import (
	"log/slog"
	"strings"
)

// parseStatusPayload はステータス文字列からバージョンマーカーを取り除き、
// 16進ペイロードと idプレフィックス付きモードかどうかを返します。
// マーカーは `<文字><バージョン数字>#` の3文字で、数字が "1" のとき
// idプレフィックス付き。マーカーが無ければ全体をペイロードとして
// idプレフィックス付き扱いにします。
func parseStatusPayload(status string) (payload string, idPrefixed bool) {
	idPrefixed = true
	payload = status
	if strings.Contains(status, "#") {
		flag := ""
		if len(status) >= 2 {
			flag = status[1:2]
		}
		if len(status) >= 3 {
			payload = status[3:]
		} else {
			payload = ""
		}
		idPrefixed = flag == "1"
	}
	return payload, idPrefixed
}

// FindDataPoint はモデルコードとステータス文字列から、指定した意味コードと
// ポートに対応するレコードを探します。見つからないときは nil を返します。
// デコードに失敗したときはエラーを返します（呼び出し側でデフォルト値に落とすこと）。
//
// ポート0は「ポート1」として扱います（登録行側のポート0も同様）。
// 登録行の走査は一致の有無にかかわらず最後に見た行を保持し、一致する行が
// 無かった場合もその行を使います。実機ファームウェア互換の挙動なので、
// 「nil を返すべき」と推測して直さないこと。
func FindDataPoint(modelCode int, status string, code StatusCode, port int) (*DataPoint, error) {
	if port == 0 {
		port = 1
	}

	var desc *FieldDescriptor
	table, ok := FieldTables.LookupModel(modelCode)
	if !ok {
		slog.Warn("フィールド情報のないデバイスモデル", "modelCode", modelCode)
	}
	for i := range table {
		desc = &table[i]
		descPort := desc.Port
		if descPort == 0 {
			descPort = 1
		}
		if desc.Encoding == 1 && desc.Code == code && descPort == port {
			break
		}
	}
	if desc == nil {
		return nil, nil
	}

	payload, idPrefixed := parseStatusPayload(status)
	points, err := DecodeDataPoints(payload, idPrefixed)
	if err != nil {
		return nil, err
	}

	for i := range points {
		dp := &points[i]
		if idPrefixed {
			if dp.Code == int(code) && dp.ID == desc.DataPointID {
				return dp, nil
			}
		} else if dp.Code == int(code) {
			return dp, nil
		}
	}
	return nil, nil
}

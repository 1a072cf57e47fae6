package homgar

import (
	"log/slog"
	"strings"
	"time"

	"homgar-status/homgar/utils"
)

// DevicePanel はデコード済みステータスを型付きの観測値として取り出す唯一の外部向け
// 窓口です。下位層のあらゆる失敗（未対応フォーマット、登録行なし、ペイロード不足、
// デコードエラー）はここで各観測値の既定値に吸収され、エラーとしては伝播しません。
//
// 全メソッドは共有状態を持たない純粋な変換なので、複数ゴルーチンから同時に
// 呼び出せます。
type DevicePanel struct {
	loc *time.Location // T4Date のエポック変換に使うゾーン。nil はホストのローカル
}

// NewDevicePanel は DevicePanel を作成します。loc が nil のときはホストの
// ローカルゾーンで時刻換算します。差分を取る2つの時刻換算が同じゾーンを
// 使うよう、プロセス内では1つの DevicePanel を共有するのが安全です。
func NewDevicePanel(loc *time.Location) *DevicePanel {
	return &DevicePanel{loc: loc}
}

// lookupStatus はステータス文字列の照会結果の3値です。
// 旧実装は「未対応フォーマット」を例外の送出と捕捉で表現していたが、
// ここでは結果値として各アクセサが局所的に消費する。
type lookupStatus int

const (
	lookupDecoded           lookupStatus = iota // レコードが見つかった
	lookupUnsupportedFormat                     // ステータス文字列が規定の形式でない
	lookupNotApplicable                         // 登録行かレコードが無い、またはデコード失敗
)

// IsDPStatus はステータス文字列が data point 形式かどうかを返します。
// "#" がちょうど3文字目（index 2）にあるときだけ真です。
func (p *DevicePanel) IsDPStatus(status string) bool {
	return strings.Index(status, "#") == 2
}

// IsReturnDefault は全アクセサ共通の既定値ゲートです。モデルコード0は
// ペイロードに関係なく常に既定値、それ以外は空文字列のときだけ既定値です。
func (p *DevicePanel) IsReturnDefault(modelCode int, status string) bool {
	if modelCode != 0 {
		return status == ""
	}
	return true
}

func (p *DevicePanel) lookupDataPoint(modelCode int, status string, code StatusCode, port int) (*DataPoint, lookupStatus) {
	if !p.IsDPStatus(status) {
		return nil, lookupUnsupportedFormat
	}
	dp, err := FindDataPoint(modelCode, status, code, port)
	if err != nil {
		slog.Debug("ステータス文字列のデコードに失敗", "modelCode", modelCode, "code", code, "err", err)
		return nil, lookupNotApplicable
	}
	if dp == nil || dp.Value == nil {
		return nil, lookupNotApplicable
	}
	return dp, lookupDecoded
}

// IsWaterLeak は指定ポートの漏水フラグ（ALARMペイロードのbit0）を返します。
// 取り出せないときは false。
func (p *DevicePanel) IsWaterLeak(modelCode int, status string, port int) bool {
	if p.IsReturnDefault(modelCode, status) {
		return false
	}
	dp, st := p.lookupDataPoint(modelCode, status, CodeAlarm, port)
	if st != lookupDecoded || len(dp.Value) < 1 {
		return false
	}
	return dp.Value[0]&1 == 1
}

// IsWaterShortage は指定ポートの水切れフラグ（ALARMペイロードのbit1）を返します。
// 取り出せないときは false。
func (p *DevicePanel) IsWaterShortage(modelCode int, status string, port int) bool {
	if p.IsReturnDefault(modelCode, status) {
		return false
	}
	dp, st := p.lookupDataPoint(modelCode, status, CodeAlarm, port)
	if st != lookupDecoded || len(dp.Value) < 1 {
		return false
	}
	return (dp.Value[0]>>1)&1 == 1
}

// GetBattery は電池残量を返します。取り出せないときは 0。
func (p *DevicePanel) GetBattery(modelCode int, status string) int {
	if p.IsReturnDefault(modelCode, status) {
		return 0
	}
	dp, st := p.lookupDataPoint(modelCode, status, CodeBattery, 0)
	if st != lookupDecoded || len(dp.Value) < 2 {
		return 0
	}
	return int(utils.BytesToUint64LE(dp.Value[1:2]))
}

// GetRSSI はRF信号強度を返します。取り出せないときは 0。
func (p *DevicePanel) GetRSSI(modelCode int, status string) int {
	if p.IsReturnDefault(modelCode, status) {
		return 0
	}
	dp, st := p.lookupDataPoint(modelCode, status, CodeRSSI, 0)
	if st != lookupDecoded || len(dp.Value) < 2 {
		return 0
	}
	return int(dp.Value[1])
}

// GetWorkMode は指定ポートの動作モード（WK_STATEペイロードの下位4bit）を返します。
// 取り出せないときは 0。
func (p *DevicePanel) GetWorkMode(modelCode int, status string, port int) int {
	if p.IsReturnDefault(modelCode, status) {
		return 0
	}
	dp, st := p.lookupDataPoint(modelCode, status, CodeWorkState, port)
	if st != lookupDecoded || len(dp.Value) < 2 {
		return 0
	}
	return int(dp.Value[1] & 15)
}

func durationValue(dp *DataPoint) int64 {
	end := 1 + dp.Length
	if end > len(dp.Value) {
		end = len(dp.Value)
	}
	return int64(utils.BytesToUint64LE(dp.Value[1:end]))
}

// GetWorkDuration は指定ポートの散水予定時間（秒）を返します。
// 取り出せないときは -1（0は実測値として有効なため番兵は負値）。
func (p *DevicePanel) GetWorkDuration(modelCode int, status string, port int) int64 {
	if !p.IsReturnDefault(modelCode, status) {
		dp, st := p.lookupDataPoint(modelCode, status, CodeDuration, port)
		if st == lookupDecoded && dp.Length > 0 {
			return durationValue(dp)
		}
	}
	return -1
}

// GetCurrentWaterDuration は指定ポートの散水経過時間（秒）を返します。
// 取り出せないときは 0。
func (p *DevicePanel) GetCurrentWaterDuration(modelCode int, status string, port int) int64 {
	if p.IsReturnDefault(modelCode, status) {
		return 0
	}
	dp, st := p.lookupDataPoint(modelCode, status, CodeDuration, port)
	if st != lookupDecoded || dp.Length <= 0 {
		return 0
	}
	return durationValue(dp)
}

// GetIrrigationEndTime は散水終了予定時刻と基準時刻 refMillis の差（ミリ秒）を
// 返します。動作モードが 0 のとき、または取り出せないときは -1。
// 基準時刻はエポックミリ秒で、T4Date の換算と同じゾーン前提で渡すこと。
func (p *DevicePanel) GetIrrigationEndTime(modelCode int, status string, refMillis int64, port int) int64 {
	if !p.IsReturnDefault(modelCode, status) {
		dp, st := p.lookupDataPoint(modelCode, status, CodeEventTime, port)
		if st != lookupUnsupportedFormat && p.GetWorkMode(modelCode, status, port) > 0 {
			if st == lookupDecoded && len(dp.Value) >= 5 {
				t4 := DecodeT4Date(utils.BytesToUint32LE(dp.Value[1:5]))
				millis, err := t4.Timestamp(p.loc)
				if err != nil {
					return -1
				}
				return millis - refMillis
			}
		}
	}
	return -1
}

// GetWaterStateTime は指定ポートの最終イベント時刻を T4Date で返します。
// 取り出せないときは NewT4Date() の番兵値。
func (p *DevicePanel) GetWaterStateTime(modelCode int, status string, port int) T4Date {
	if !p.IsReturnDefault(modelCode, status) {
		dp, st := p.lookupDataPoint(modelCode, status, CodeEventTime, port)
		if st == lookupDecoded && len(dp.Value) >= 5 {
			return DecodeT4Date(utils.BytesToUint32LE(dp.Value[1:5]))
		}
	}
	return NewT4Date()
}

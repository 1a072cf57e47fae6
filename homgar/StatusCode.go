package homgar

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// StatusCode はデバイスが報告する1つの観測値の意味コードを表します。
// ワイヤ上の data point id とは独立で、同じコードが複数ポートに現れることがあります。
type StatusCode int

const (
	CodeCHG             StatusCode = 0
	CodeRain            StatusCode = 1
	CodeAlarm           StatusCode = 2
	CodeCheck           StatusCode = 3
	CodeRMTime          StatusCode = 8
	CodeTemperature     StatusCode = 9
	CodeHumidity        StatusCode = 10
	CodePH              StatusCode = 11
	CodeAtmos           StatusCode = 12
	CodeTotalRain       StatusCode = 13
	CodeVFlow           StatusCode = 14
	CodeLastUsage       StatusCode = 15
	CodeCurrent         StatusCode = 16
	CodePower           StatusCode = 17
	CodeEnergy          StatusCode = 18
	CodeDuration        StatusCode = 19
	CodeWaterTotal      StatusCode = 20
	CodeEventTime       StatusCode = 21
	CodeTrend           StatusCode = 22
	CodeSensorF         StatusCode = 23
	CodeVWind           StatusCode = 24
	CodeIlluminance     StatusCode = 25
	CodeTotalToday      StatusCode = 26
	CodeCO2             StatusCode = 27
	CodePM25            StatusCode = 28
	CodeVoltage         StatusCode = 29
	CodeWorkState       StatusCode = 30
	CodeBattery         StatusCode = 31
	CodeRSSI            StatusCode = 32
	CodeMaxTemperature  StatusCode = 33
	CodeMaxHumidity     StatusCode = 34
	CodeMaxStateMos     StatusCode = 35
	CodeMaxWind         StatusCode = 36
	CodeWaterZones      StatusCode = 37
	CodeTSDet           StatusCode = 38
	CodeStaValve        StatusCode = 39
	CodeStaJob          StatusCode = 40
	CodeStaCall         StatusCode = 41
	CodeStaWaterPS      StatusCode = 42
	CodeHourRain        StatusCode = 43
	CodeDayRain         StatusCode = 44
	CodeWeekRain        StatusCode = 45
	CodeStaCurFlow      StatusCode = 46
	CodeMaxCO2          StatusCode = 47
	CodeMaxPM25         StatusCode = 48
	CodeStaLastDuration StatusCode = 49
	CodeStaOtherTotal   StatusCode = 50
	CodeStaRSSI2        StatusCode = 51
)

// コード 4..7 はファームウェアの採番で欠番になっている

var statusCodeNames = map[StatusCode]string{
	CodeCHG:             "CHG",
	CodeRain:            "RAIN",
	CodeAlarm:           "ALARM",
	CodeCheck:           "CHECK",
	CodeRMTime:          "RM_TIME",
	CodeTemperature:     "TEM",
	CodeHumidity:        "RH",
	CodePH:              "PH",
	CodeAtmos:           "ATMOS",
	CodeTotalRain:       "TOTAL_RAIN",
	CodeVFlow:           "V_FLOW",
	CodeLastUsage:       "LAST_USAGE",
	CodeCurrent:         "CURRENT",
	CodePower:           "POWER",
	CodeEnergy:          "ENERGY",
	CodeDuration:        "DURATION",
	CodeWaterTotal:      "WATER_TOTAL",
	CodeEventTime:       "EVENT_TIME",
	CodeTrend:           "TREND",
	CodeSensorF:         "SENSOR_F",
	CodeVWind:           "V_WIND",
	CodeIlluminance:     "ILLUMINANCE",
	CodeTotalToday:      "TOTAL_TODAY",
	CodeCO2:             "CO2",
	CodePM25:            "PM25",
	CodeVoltage:         "VOLTAGE",
	CodeWorkState:       "WK_STATE",
	CodeBattery:         "BAT",
	CodeRSSI:            "RSSI",
	CodeMaxTemperature:  "MAX_TEM",
	CodeMaxHumidity:     "MAX_RH",
	CodeMaxStateMos:     "MAX_STATE_MOS",
	CodeMaxWind:         "MAX_WIND",
	CodeWaterZones:      "WATER_ZONES",
	CodeTSDet:           "TS_DET",
	CodeStaValve:        "STA_VALVE",
	CodeStaJob:          "STA_JOB",
	CodeStaCall:         "STA_CALL",
	CodeStaWaterPS:      "STA_WATER_PS",
	CodeHourRain:        "HOUR_RAIN",
	CodeDayRain:         "DAY_RAIN",
	CodeWeekRain:        "WEEK_RAIN",
	CodeStaCurFlow:      "STA_CUR_FLOW",
	CodeMaxCO2:          "MAX_CO2",
	CodeMaxPM25:         "MAX_PM25",
	CodeStaLastDuration: "STA_LAST_DURATION",
	CodeStaOtherTotal:   "STA_OTHER_TOTAL",
	CodeStaRSSI2:        "STA_RSSI2",
}

var statusCodeValues = func() map[string]StatusCode {
	m := make(map[string]StatusCode, len(statusCodeNames))
	for code, name := range statusCodeNames {
		m[name] = code
	}
	return m
}()

func (c StatusCode) String() string {
	if name, ok := statusCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("(%d)", int(c))
}

// MarshalJSON は StatusCode を名前のJSON文字列にエンコードします。
func (c StatusCode) MarshalJSON() ([]byte, error) {
	if name, ok := statusCodeNames[c]; ok {
		return json.Marshal(name)
	}
	return json.Marshal(int(c))
}

// UnmarshalJSON は名前形式または10進数形式のJSON値から StatusCode をデコードします。
func (c *StatusCode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if code, ok := statusCodeValues[s]; ok {
			*c = code
			return nil
		}
		// 10進数の文字列形式 (旧フォーマット互換)
		val, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid StatusCode string %q", s)
		}
		*c = StatusCode(val)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("StatusCode should be a string or number, got %s", data)
	}
	*c = StatusCode(n)
	return nil
}

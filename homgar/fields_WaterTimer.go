package homgar

// 2分岐/3分岐の散水タイマー（ハブ配下のRFサブデバイス）
const WaterTimerModelCode = 271

const (
	// data point id
	DP_WT_RSSI      = 23
	DP_WT_Battery   = 24
	DP_WT_WorkState = 25 // ポート1。ポート2,3は +1, +2
	DP_WT_Alarm     = 29
	DP_WT_EventTime = 33
	DP_WT_Duration  = 37
)

func (r FieldRegistry) WaterTimer() FieldTableEntry {
	return FieldTableEntry{
		ModelCode: WaterTimerModelCode,
		Table: FieldTable{
			{Code: CodeRSSI, DataPointID: DP_WT_RSSI, Port: 0, Encoding: 1},
			{Code: CodeBattery, DataPointID: DP_WT_Battery, Port: 0, Encoding: 1},
			{Code: CodeWorkState, DataPointID: DP_WT_WorkState, Port: 1, Encoding: 1},
			{Code: CodeWorkState, DataPointID: DP_WT_WorkState + 1, Port: 2, Encoding: 1},
			{Code: CodeWorkState, DataPointID: DP_WT_WorkState + 2, Port: 3, Encoding: 1},
			{Code: CodeAlarm, DataPointID: DP_WT_Alarm, Port: 1, Encoding: 1},
			{Code: CodeAlarm, DataPointID: DP_WT_Alarm + 1, Port: 2, Encoding: 1},
			{Code: CodeAlarm, DataPointID: DP_WT_Alarm + 2, Port: 3, Encoding: 1},
			{Code: CodeEventTime, DataPointID: DP_WT_EventTime, Port: 1, Encoding: 1},
			{Code: CodeEventTime, DataPointID: DP_WT_EventTime + 1, Port: 2, Encoding: 1},
			{Code: CodeEventTime, DataPointID: DP_WT_EventTime + 2, Port: 3, Encoding: 1},
			{Code: CodeDuration, DataPointID: DP_WT_Duration, Port: 1, Encoding: 1},
			{Code: CodeDuration, DataPointID: DP_WT_Duration + 1, Port: 2, Encoding: 1},
			{Code: CodeDuration, DataPointID: DP_WT_Duration + 2, Port: 3, Encoding: 1},
		},
	}
}

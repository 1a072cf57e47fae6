package homgar

import "testing"

func TestFieldTables_LookupModel(t *testing.T) {
	table, ok := FieldTables.LookupModel(WaterTimerModelCode)
	if !ok {
		t.Fatal("LookupModel(271) not found")
	}
	if len(table) != 14 {
		t.Fatalf("LookupModel(271) = %d rows, want 14", len(table))
	}
	// 先頭2行はポート無関係の RSSI と電池
	if table[0] != (FieldDescriptor{Code: CodeRSSI, DataPointID: 23, Port: 0, Encoding: 1}) {
		t.Errorf("row 0 = %v", table[0])
	}
	if table[1] != (FieldDescriptor{Code: CodeBattery, DataPointID: 24, Port: 0, Encoding: 1}) {
		t.Errorf("row 1 = %v", table[1])
	}
	// 残りは3ポート分の WK_STATE / ALARM / EVENT_TIME / DURATION
	for _, want := range []FieldDescriptor{
		{Code: CodeWorkState, DataPointID: 27, Port: 3, Encoding: 1},
		{Code: CodeAlarm, DataPointID: 30, Port: 2, Encoding: 1},
		{Code: CodeEventTime, DataPointID: 33, Port: 1, Encoding: 1},
		{Code: CodeDuration, DataPointID: 39, Port: 3, Encoding: 1},
	} {
		found := false
		for _, row := range table {
			if row == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("descriptor %v not in table", want)
		}
	}
}

func TestFieldTables_LookupModelUnknown(t *testing.T) {
	if _, ok := FieldTables.LookupModel(999); ok {
		t.Error("LookupModel(999) = ok, want not found")
	}
}

func TestStatusCode_String(t *testing.T) {
	tests := []struct {
		code StatusCode
		want string
	}{
		{CodeBattery, "BAT"},
		{CodeRSSI, "RSSI"},
		{CodeWorkState, "WK_STATE"},
		{StatusCode(7), "(7)"}, // 欠番
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.code), got, tt.want)
		}
	}
}

func TestStatusCode_JSON(t *testing.T) {
	data, err := CodeBattery.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(data) != `"BAT"` {
		t.Errorf("MarshalJSON() = %s", data)
	}
	var code StatusCode
	if err := code.UnmarshalJSON([]byte(`"BAT"`)); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if code != CodeBattery {
		t.Errorf("UnmarshalJSON(\"BAT\") = %v", code)
	}
	if err := code.UnmarshalJSON([]byte(`31`)); err != nil {
		t.Fatalf("UnmarshalJSON(31) error = %v", err)
	}
	if code != CodeBattery {
		t.Errorf("UnmarshalJSON(31) = %v", code)
	}
}

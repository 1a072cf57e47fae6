package homgar

// FieldDescriptor はあるデバイスモデルの1観測値を、ワイヤ上の data point id と
// エンコード種別に対応付ける登録行です。静的な設定値で、実行中に変更されません。
type FieldDescriptor struct {
	Code        StatusCode // 意味コード
	DataPointID int        // ワイヤ上の data point id
	Port        int        // ポート番号。0は「ポート1」と同義
	Encoding    int        // エンコード種別。1 = TLVペイロード
}

// FieldTable は1モデル分の FieldDescriptor の列です。順序は登録順を保持します。
type FieldTable []FieldDescriptor

// FieldTableMap はモデルコードから FieldTable への対応表です。
type FieldTableMap map[int]FieldTable

// FieldTables は既知の全デバイスモデルの対応表。
// 新しいモデルは FieldRegistry にメソッドを足すだけで登録されます。
var FieldTables = BuildFieldTableMap()

// FieldRegistry は各モデルの FieldTable 定義をメソッドとして束ねます。
type FieldRegistry struct{}

// FieldTableEntry は1モデル分の登録内容です。
type FieldTableEntry struct {
	ModelCode int
	Table     FieldTable
}

// BuildFieldTableMap は FieldRegistry の全エントリから FieldTableMap を作成します。
func BuildFieldTableMap() FieldTableMap {
	registry := FieldRegistry{}
	result := FieldTableMap{}
	for _, entry := range []FieldTableEntry{
		registry.WaterTimer(),
	} {
		result[entry.ModelCode] = entry.Table
	}
	return result
}

// LookupModel はモデルコードに対応する FieldTable を返します。
// 未知のモデルでは ok=false を返します。呼び出し側はこれをエラーではなく
// 「フィールド情報なし」として扱い、診断ログに残すこと。
func (ft FieldTableMap) LookupModel(modelCode int) (FieldTable, bool) {
	table, ok := ft[modelCode]
	return table, ok
}

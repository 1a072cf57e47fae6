// Package homgar は HomGar 系の庭園灌漑IoTデバイスが報告するビットパックされた
// ステータス文字列をデコードし、型付きの観測値（電池残量、RF信号強度、動作モード、
// 散水時間、警報フラグ、時刻）として取り出します。
//
// ステータス文字列のワイヤフォーマット:
//
//	[<文字><バージョン数字>#] <16進ペイロード> [,以降は破棄されるサフィックス]
//
// ペイロードは可変長TLVレコードの列で、バージョン数字 "1" のとき各レコードの
// 先頭に1バイトの data point id が付きます。レコードの意味付けはモデルコード
// ごとの FieldTable（FieldTables 参照）で解決します。
//
// HTTPセッションやデバイスツリーの構築はこのパッケージの対象外です。呼び出し側が
// モデルコード・ステータス文字列・基準時刻を供給し、DevicePanel 経由で値を
// 取り出します。
package homgar

package domain

import "strings"

// ConversationID 私訊對話的對稱識別碼
// 兩個用戶名轉小寫後按字典序排序, 用 _ 連接
// A↔B 和 B↔A 必須解析到同一份文檔, 所有建構與查詢都只能經過這裡
func ConversationID(userA, userB string) string {
	a := strings.ToLower(strings.TrimSpace(userA))
	b := strings.ToLower(strings.TrimSpace(userB))
	if a > b {
		a, b = b, a
	}
	return a + "_" + b
}

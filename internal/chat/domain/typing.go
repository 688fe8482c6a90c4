package domain

import "time"

// TypingWindow 發出輸入訊號後, 被視為「正在輸入」的時間窗
const TypingWindow = 3 * time.Second

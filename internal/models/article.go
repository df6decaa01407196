package models

import "time"

// Article is one row of the word_info table. Link is matched by suffix
// ("slug") on lookup and update; Title is the delete key.
type Article struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Introduction string    `json:"introduction"`
	Link         string    `json:"link"`
	Word         string    `json:"word"`
	TextPinyin   string    `json:"text_pinyin"`
	PutTime      time.Time `json:"put_time"`
}

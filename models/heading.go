package models

// Heading is one entry of a document outline used for in-page navigation.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

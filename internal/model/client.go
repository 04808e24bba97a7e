package model

type Client struct {
	TaxID    int64
	Name     string
	Location string
}

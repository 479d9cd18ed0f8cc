package usecase

import "github.com/piresc/shesafe/services/notify"

// NotifyUC implements notify.NotifyUC
type NotifyUC struct {
	smsGW notify.SMSGW
}

// NewNotifyUC creates a new notification usecase instance
func NewNotifyUC(smsGW notify.SMSGW) *NotifyUC {
	return &NotifyUC{smsGW: smsGW}
}

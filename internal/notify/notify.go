// Package notify enqueues outbound WhatsApp rows. An external worker owns
// delivery; a failed enqueue is logged and never fails the caller.
package notify

import (
	"encoding/json"

	"gearshift-backend/internal/database"
	"gearshift-backend/internal/logger"
	"gearshift-backend/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/ttacon/libphonenumber"
)

const defaultRegion = "IN"

const TemplateJobReady = "job_ready_for_delivery"

// QueueJobReady writes a QUEUED notification row when a job card reaches
// READY_FOR_DELIVERY, if the customer can be reached and has opted in.
func QueueJobReady(job models.Job) {
	var customer models.Customer
	if err := database.DB.First(&customer, "id = ?", job.CustomerID).Error; err != nil {
		logger.Get().WithFields(logrus.Fields{
			"job_id":      job.ID,
			"customer_id": job.CustomerID,
		}).WithError(err).Warn("skipping job-ready notification, customer lookup failed")
		return
	}
	if !customer.WhatsappOptIn || customer.Phone == nil || *customer.Phone == "" {
		return
	}

	payload, _ := json.Marshal(jobReadyPayload{
		CustomerName: customer.Name,
		JobCardID:    job.ID,
		State:        string(job.State),
	})

	row := models.Notification{
		JobCardID: &job.ID,
		Channel:   models.NotificationChannelWhatsapp,
		ToPhone:   formatE164(*customer.Phone),
		Template:  TemplateJobReady,
		Payload:   payload,
		Status:    models.NotificationStatusQueued,
	}
	if err := database.DB.Create(&row).Error; err != nil {
		logger.Get().WithFields(logrus.Fields{
			"job_id": job.ID,
		}).WithError(err).Warn("failed to enqueue job-ready notification")
	}
}

type jobReadyPayload struct {
	CustomerName string `json:"customerName"`
	JobCardID    string `json:"jobCardId"`
	State        string `json:"state"`
}

// formatE164 normalizes a stored phone to E.164. Unparseable numbers are
// queued as stored; the delivery worker deals with them.
func formatE164(raw string) string {
	num, err := libphonenumber.Parse(raw, defaultRegion)
	if err != nil {
		return raw
	}
	return libphonenumber.Format(num, libphonenumber.E164)
}

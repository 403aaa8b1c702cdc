package orders

import (
	"context"
	"log"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// ConfirmationMailer sends the order confirmation to the customer and copies
// the admin list from settings. It runs async: a mail failure never fails the
// order.
type ConfirmationMailer struct{}

func (ConfirmationMailer) SendOrderConfirmation(order models.Order) {
	go func() {
		html := utils.GenerateOrderConfirmationHTML(order)
		subject := "Your Aurelia order #" + order.ID.Hex()

		var settings models.AdminSettings
		settingsErr := database.Mongo.Collection(database.ColAdminSettings).
			FindOne(context.Background(), bson.M{"_id": "settings"}).Decode(&settings)

		// invoice PDF is best effort; the confirmation goes out without it
		var invoice []byte
		if settingsErr == nil && settings.StoreUPIID != "" {
			qr, err := utils.GenerateUPIQR(settings.StoreUPIID, settings.StoreName,
				"ORD-"+order.ID.Hex(), order.TotalPrice)
			if err == nil {
				invoice, err = utils.RenderInvoicePDF(utils.GetFrontendInvoiceBaseURL(), order.ID.Hex(), qr)
				if err != nil {
					log.Printf("⚠️ Invoice render failed for %s: %v", order.ID.Hex(), err)
				}
			}
		}

		if order.PersonalInfo.Email != "" {
			if err := utils.SendEmail(order.PersonalInfo.Email, subject, html, invoice); err != nil {
				log.Printf("⚠️ Confirmation mail failed for %s: %v", order.ID.Hex(), err)
			}
		}

		if settingsErr != nil || len(settings.AdminEmails) == 0 {
			return
		}
		if err := utils.SendEmailMany(settings.AdminEmails, "New order "+order.ID.Hex(), html); err != nil {
			log.Printf("⚠️ Admin copy failed for %s: %v", order.ID.Hex(), err)
		}
	}()
}

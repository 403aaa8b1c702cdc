package utils

import (
	"fmt"

	"aurelia_back_end/internal/models"
)

func orderItemsHTML(items []models.OrderItem) string {
	rows := ""
	for _, item := range items {
		rows += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #eee;">%s</td>
				<td style="padding: 8px; border: 1px solid #eee;">%d</td>
				<td style="padding: 8px; border: 1px solid #eee;">₹%.2f</td>
				<td style="padding: 8px; border: 1px solid #eee;">₹%.2f</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}
	return rows
}

// GenerateOrderConfirmationHTML builds the confirmation mail sent to the
// customer (and copied to the admin list) once an order lands.
func GenerateOrderConfirmationHTML(order models.Order) string {
	discountRow := ""
	if order.CouponDiscount > 0 {
		discountRow = fmt.Sprintf(`
			<tr>
				<td colspan="3" style="padding: 8px; text-align: right;">Coupon (%s):</td>
				<td style="padding: 8px;">-₹%.2f</td>
			</tr>`, order.CouponCode, order.CouponDiscount)
	}
	if order.DiscountPrice > 0 {
		discountRow += fmt.Sprintf(`
			<tr>
				<td colspan="3" style="padding: 8px; text-align: right;">Discount:</td>
				<td style="padding: 8px;">-₹%.2f</td>
			</tr>`, order.DiscountPrice)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Order confirmation</title>
</head>
<body style="font-family: Georgia, serif; background-color: #faf7f2; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 24px; border-radius: 10px;">
		<h2 style="color: #8a6d3b;">Thank you for your order, %s</h2>
		<p>Your order <strong>#%s</strong> has been confirmed.</p>

		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f5efe4;">
					<th style="padding: 8px; text-align: left; border: 1px solid #eee;">Item</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #eee;">Qty</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #eee;">Unit price</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #eee;">Total</th>
				</tr>
			</thead>
			<tbody>
				%s
			</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right;">Tax:</td>
					<td style="padding: 8px;">₹%.2f</td>
				</tr>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right;">Shipping:</td>
					<td style="padding: 8px;">₹%.2f</td>
				</tr>
				%s
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Grand total:</td>
					<td style="padding: 8px; font-weight: bold;">₹%.2f</td>
				</tr>
			</tfoot>
		</table>

		<p>We will write again when your order ships to:</p>
		<p style="color: #555;">%s, %s, %s %s</p>

		<p style="margin-top: 30px; color: #555;">
			Warm regards,<br>
			<strong>The Aurelia team</strong>
		</p>
	</div>
</body>
</html>`,
		order.PersonalInfo.Name,
		order.ID.Hex(),
		orderItemsHTML(order.Items),
		order.TaxPrice,
		order.ShippingPrice,
		discountRow,
		order.TotalPrice,
		order.ShippingAddress.Address,
		order.ShippingAddress.City,
		order.ShippingAddress.State,
		order.ShippingAddress.PostalCode,
	)
}

// GenerateDeliveryHTML is sent when an admin marks the order delivered.
func GenerateDeliveryHTML(order models.Order) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Order delivered</title></head>
<body style="font-family: Georgia, serif; background-color: #faf7f2; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 24px; border-radius: 10px;">
		<h2 style="color: #8a6d3b;">Your order has arrived</h2>
		<p>Hello %s,</p>
		<p>Order <strong>#%s</strong> was marked delivered. We hope the pieces bring you joy.</p>
		<p>If anything is not right, reply to this mail and we will take care of it.</p>
		<p style="margin-top: 30px; color: #555;">
			Warm regards,<br>
			<strong>The Aurelia team</strong>
		</p>
	</div>
</body>
</html>`, order.PersonalInfo.Name, order.ID.Hex())
}

// GenerateCustomDesignHTML notifies the admin list about a new made-to-order
// request.
func GenerateCustomDesignHTML(design models.CustomDesign) string {
	imageBlock := ""
	if design.ImageURL != "" {
		imageBlock = fmt.Sprintf(`<p><a href="%s">Reference image</a></p>`, design.ImageURL)
	}
	budgetBlock := ""
	if design.Budget > 0 {
		budgetBlock = fmt.Sprintf(`<p>Budget: ₹%.2f</p>`, design.Budget)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New custom design request</title></head>
<body style="font-family: Georgia, serif; padding: 20px;">
	<div style="max-width: 600px; margin: auto;">
		<h2>New custom design request</h2>
		<p><strong>%s</strong> (%s, %s)</p>
		<p>Material: %s</p>
		%s
		<blockquote style="border-left: 3px solid #8a6d3b; padding-left: 12px; color: #444;">%s</blockquote>
		%s
	</div>
</body>
</html>`, design.Name, design.Email, design.Phone, design.Material, budgetBlock, design.Description, imageBlock)
}

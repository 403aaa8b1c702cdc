package orders

import (
	"testing"

	"aurelia_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStockDecrement_FloorCheckInFilter(t *testing.T) {
	oid := primitive.NewObjectID()
	item := models.OrderItem{ProductID: oid.Hex(), Quantity: 2, ProductType: models.TypeJewellery}

	filter, update := stockDecrement(oid, item)
	assert.Equal(t, bson.M{"_id": oid, "count_in_stock": bson.M{"$gte": 2}}, filter)
	assert.Equal(t, bson.M{"$inc": bson.M{"count_in_stock": -2}}, update)
}

func TestStockFields_BeadMovesBothCounters(t *testing.T) {
	bead := models.OrderItem{ProductID: "b", Quantity: 3, ProductType: models.TypeBead}
	assert.Equal(t,
		bson.M{"count_in_stock": -3, "inventory_no_of_line": -3},
		stockFields(bead, -bead.Quantity))

	// restore direction
	assert.Equal(t,
		bson.M{"count_in_stock": 3, "inventory_no_of_line": 3},
		stockFields(bead, bead.Quantity))
}

func TestStockFields_NonBeadMovesOnlyStock(t *testing.T) {
	bangle := models.OrderItem{ProductID: "x", Quantity: 1, ProductType: models.TypeBangle}
	assert.Equal(t, bson.M{"count_in_stock": -1}, stockFields(bangle, -1))
}

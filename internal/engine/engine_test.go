package engine

import (
	"context"
	"errors"

	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/model"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/internal/store"
	"github.com/Ayush29Ayush/Zenner-IOT-Analytics/pkg/utils"
)

// memCollection is an in-memory store.Collection used across the engine
// tests. It evaluates the same typed Query contract the mongo adapter does,
// preserving insertion order.
type memCollection struct {
	docs      []model.Document
	findErr   error
	insertErr error
}

var errStoreDown = errors.New("store down")

func (c *memCollection) Find(_ context.Context, q store.Query) ([]model.Document, error) {
	if c.findErr != nil {
		return nil, c.findErr
	}

	var out []model.Document
	for _, doc := range c.docs {
		keep := true
		for field, min := range q.Gt {
			if !(utils.Numeric(doc[field]) > min) {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}

		if len(q.Fields) == 0 {
			copied := make(model.Document, len(doc))
			for k, v := range doc {
				copied[k] = v
			}
			out = append(out, copied)
			continue
		}

		projected := make(model.Document, len(q.Fields))
		for _, field := range q.Fields {
			if v, ok := doc[field]; ok {
				projected[field] = v
			}
		}
		out = append(out, projected)
	}
	return out, nil
}

func (c *memCollection) InsertMany(_ context.Context, docs []model.Document) (int, error) {
	if c.insertErr != nil {
		return 0, c.insertErr
	}
	c.docs = append(c.docs, docs...)
	return len(docs), nil
}

func uplinkDoc(deviceID, devEUI, gatewayID string, rssi, snr, temp, humidity float64) model.Document {
	return model.Document{
		"device_id":   deviceID,
		"dev_eui":     devEUI,
		"gateway_id":  gatewayID,
		"rssi":        rssi,
		"snr":         snr,
		"temperature": temp,
		"humidity":    humidity,
		"latitude":    12.97,
		"longitude":   77.59,
	}
}

func saleDoc(orderID, productID, orderDate string, sales float64, category, subCategory string) model.Document {
	return model.Document{
		"Order ID":     orderID,
		"Product ID":   productID,
		"Order Date":   orderDate,
		"Sales":        sales,
		"Category":     category,
		"Sub-Category": subCategory,
	}
}

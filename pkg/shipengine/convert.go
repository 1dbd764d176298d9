package shipengine

import (
	"encoding/json"
	"fmt"
)

// ShipmentResult is the reply of a single-shipment operation. Raw is
// always populated; Shipment is populated only when the resolved
// AsObjects flag requested typed conversion.
type ShipmentResult struct {
	Raw      Params
	Shipment *Shipment
}

// ShipmentListResult is the reply of a shipment-collection operation
// (list, create). Raw is always populated; Shipments is populated, in
// reply order, only when typed conversion ran.
type ShipmentListResult struct {
	Raw       Params
	Shipments []Shipment
}

// convertShipments maps the raw shipment records of a reply into typed
// Shipment values. Collection replies carry their records under the
// "shipments" key; single-shipment replies are the record itself.
// Conversion is all-or-nothing: the first record that fails to decode
// aborts with a *ConversionError and no partial result.
func convertShipments(raw Params) ([]Shipment, error) {
	records, ok := raw["shipments"]
	if !ok {
		s, err := convertShipment(raw, -1)
		if err != nil {
			return nil, err
		}
		return []Shipment{*s}, nil
	}

	list, ok := records.([]any)
	if !ok {
		return nil, &ConversionError{
			Index: -1,
			Cause: fmt.Errorf("\"shipments\" is %T, expected a list", records),
		}
	}

	out := make([]Shipment, 0, len(list))
	for i, record := range list {
		s, err := convertShipment(record, i)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

// convertShipment decodes one raw record into a Shipment by round-tripping
// it through JSON, so a record whose fields have unexpected types fails
// loudly instead of yielding a half-filled object.
func convertShipment(record any, index int) (*Shipment, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, &ConversionError{Index: index, Cause: err}
	}
	var s Shipment
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, &ConversionError{Index: index, Cause: err}
	}
	return &s, nil
}

// Package export serializa el reporte de ventas de un período como XML
// descargable, pensado para importarse en hojas de cálculo.
package export

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/kumishop/kumi-api/internal/application/sales"
)

var _ sales.ReportBuilder = (*XMLReportBuilder)(nil)

// XMLReportBuilder implementa sales.ReportBuilder con etree.
type XMLReportBuilder struct{}

// NewXMLReportBuilder construye el builder.
func NewXMLReportBuilder() *XMLReportBuilder { return &XMLReportBuilder{} }

// Build serializa el reporte. Estructura:
//
//	<ReporteVentas desde="..." hasta="..." generado="...">
//	  <Resumen pedidos="..." total="..." netoRecibido="..."/>
//	  <Pedidos>
//	    <Pedido codigo="..." fecha="...">...</Pedido>
//	  </Pedidos>
//	</ReporteVentas>
func (b *XMLReportBuilder) Build(from, to time.Time, orders []sales.ReportOrder) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("ReporteVentas")
	root.CreateAttr("desde", from.Format("2006-01-02"))
	root.CreateAttr("hasta", to.Format("2006-01-02"))
	root.CreateAttr("generado", time.Now().Format(time.RFC3339))

	var total, net decimal.Decimal
	for _, o := range orders {
		total = total.Add(o.Total)
		net = net.Add(o.NetAmountReceived)
	}

	summary := root.CreateElement("Resumen")
	summary.CreateAttr("pedidos", fmt.Sprintf("%d", len(orders)))
	summary.CreateAttr("total", total.StringFixed(2))
	summary.CreateAttr("netoRecibido", net.StringFixed(2))

	list := root.CreateElement("Pedidos")
	for _, o := range orders {
		p := list.CreateElement("Pedido")
		p.CreateAttr("codigo", fmt.Sprintf("%d", o.Code))
		p.CreateAttr("fecha", o.OrderDate.Format("2006-01-02"))
		p.CreateElement("Cliente").SetText(o.CustomerName)
		p.CreateElement("Canal").SetText(o.Channel)
		p.CreateElement("Estado").SetText(o.Status)
		p.CreateElement("Total").SetText(o.Total.StringFixed(2))
		p.CreateElement("NetoRecibido").SetText(o.NetAmountReceived.StringFixed(2))
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar reporte XML: %w", err)
	}
	return out, nil
}

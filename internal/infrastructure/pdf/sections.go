package pdf

import (
	"time"

	"github.com/jhoicas/Boletas-api/internal/domain/entity"
	"github.com/jhoicas/Boletas-api/pkg/format"
)

// ── Textos fijos ──────────────────────────────────────────────────────────────

const (
	senderName     = "Properties Market"
	senderGroup    = "Grupo 15 Arquisis"
	senderCity     = "Santiago, Chile"
	documentTitle  = "Boleta Electronica"
	footerText     = "La reserva fue realizada correctamente. Gracias por su compra."
	labelName      = "Nombre:"
	labelDate      = "Fecha:"
	labelPaid      = "Total pagado:"
	colProperty    = "Propiedad"
	colReservation = "Valor Reserva"
	colPrice       = "Valor Propiedad"
	labelSubtotal  = "Subtotal"
	labelPaidToDay = "Pagado hasta la fecha"
	labelBalance   = "Saldo pendiente"
)

var colorBody = Color{R: 0x44, G: 0x44, B: 0x44}

// ── Coordenadas ───────────────────────────────────────────────────────────────
// Todas absolutas: cambiar el orden de las secciones exige recalcularlas.

const (
	headerTitleX, headerTitleY = 50.0, 57.0
	headerSenderX              = 200.0
	headerSenderY              = 50.0
	headerLineStep             = 15.0

	customerTitleY    = 160.0
	customerRuleTopY  = 185.0
	customerTop       = 200.0
	customerLineStep  = 15.0
	customerRuleEndY  = 252.0
	customerLabelX    = 50.0
	customerValueX    = 150.0
	invoiceTableTop   = 330.0
	tableHeaderRuleDY = 20.0
	tableItemDY       = 30.0
	tableItemRuleDY   = 20.0
	subtotalDY        = 60.0
	paidToDateDY      = 20.0
	balanceDY         = 25.0

	footerX, footerY = 50.0, 780.0
	footerWidth      = 500.0
)

// ── Secciones ─────────────────────────────────────────────────────────────────

// header: título a la izquierda e identidad del emisor alineada a la derecha.
func header(l *Layout) {
	l.FontSize(20)
	l.Text(senderName, headerTitleX, headerTitleY, 0, AlignLeft)

	l.FontSize(10)
	for i, line := range []string{senderName, senderGroup, senderCity} {
		l.Text(line, headerSenderX, headerSenderY+float64(i)*headerLineStep, 0, AlignRight)
	}
}

// customerInformation: título, nombre (negrita), fecha de emisión y total pagado.
func customerInformation(l *Layout, customer entity.Customer, tx entity.Transaction, now time.Time) {
	l.TextColor(colorBody)
	l.FontSize(20)
	l.Text(documentTitle, customerLabelX, customerTitleY, 0, AlignLeft)

	l.HorizontalRule(customerRuleTopY)

	l.FontSize(10)
	l.Text(labelName, customerLabelX, customerTop, 0, AlignLeft)
	l.Style(FontBold)
	l.Text(customer.Name, customerValueX, customerTop, 0, AlignLeft)
	l.Style(FontRegular)

	l.Text(labelDate, customerLabelX, customerTop+customerLineStep, 0, AlignLeft)
	l.Text(format.Date(now), customerValueX, customerTop+customerLineStep, 0, AlignLeft)

	// El total pagado va sin formato de moneda, tal como llega en la petición.
	l.Text(labelPaid, customerLabelX, customerTop+2*customerLineStep, 0, AlignLeft)
	l.Text(tx.PaidLabel(), customerValueX, customerTop+2*customerLineStep, 0, AlignLeft)

	l.HorizontalRule(customerRuleEndY)
}

// invoiceTable: cabecera, la única línea de la acción y los totales.
func invoiceTable(l *Layout, tx entity.Transaction) {
	l.Style(FontBold)
	l.TableRow(invoiceTableTop, [5]string{colProperty, "", "", colReservation, colPrice})
	l.HorizontalRule(invoiceTableTop + tableHeaderRuleDY)
	l.Style(FontRegular)

	itemY := invoiceTableTop + tableItemDY
	l.TableRow(itemY, [5]string{tx.Name, "", "", format.Currency(tx.AmountPaid), format.Currency(tx.Price)})
	l.HorizontalRule(itemY + tableItemRuleDY)

	subtotalY := invoiceTableTop + subtotalDY
	l.TableRow(subtotalY, [5]string{"", "", labelSubtotal, "", format.Currency(tx.Price)})

	paidY := subtotalY + paidToDateDY
	l.TableRow(paidY, [5]string{"", "", labelPaidToDay, "", format.Currency(tx.AmountPaid)})

	dueY := paidY + balanceDY
	l.Style(FontBold)
	l.TableRow(dueY, [5]string{"", "", labelBalance, "", format.Currency(tx.OutstandingBalance())})
	l.Style(FontRegular)
}

// footer: agradecimiento centrado al pie de la página.
func footer(l *Layout) {
	l.FontSize(10)
	l.Text(footerText, footerX, footerY, footerWidth, AlignCenter)
}

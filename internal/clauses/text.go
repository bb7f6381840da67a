package clauses

import (
	"fmt"
	"strings"
)

var purchaseClauses = []Clause{
	{1, "Objeto", "El VENDEDOR, " + Seller + ", vende al COMPRADOR, " + Buyer + ", que adquiere, el vehículo " + VehicleName + " con matrícula " + Plate + " y número de bastidor " + VIN + ", en el estado de conservación y funcionamiento que el COMPRADOR declara conocer y aceptar tras haberlo examinado y probado."},
	{2, "Precio y forma de pago", "El precio de la compraventa es el que figura en el cuadro de condiciones económicas de este contrato, impuestos incluidos. El pago se realizará en la forma indicada, quedando la entrega del vehículo condicionada al cobro efectivo de la totalidad del precio."},
	{3, "Titularidad y cargas", "El VENDEDOR declara ser el legítimo titular del vehículo y que sobre el mismo no pesa carga, gravamen, embargo, reserva de dominio ni limitación alguna de disposición, respondiendo en caso contrario frente al COMPRADOR."},
	{4, "Cambio de titularidad", "Las partes se obligan a realizar ante la Jefatura Provincial de Tráfico los trámites de transmisión del vehículo en el plazo legalmente establecido. Los gastos de transferencia y el impuesto correspondiente serán por cuenta del COMPRADOR salvo pacto en contrario."},
	{5, "Responsabilidad", "Desde la fecha y hora de entrega, el COMPRADOR asume cuantas responsabilidades pudieran derivarse de la tenencia y circulación del vehículo, incluidas las sanciones administrativas, quedando el VENDEDOR exonerado de las mismas."},
	{6, "Estado del vehículo", "El kilometraje indicado corresponde a la lectura del odómetro en el momento de la firma. El COMPRADOR reconoce haber sido informado del estado general del vehículo y de la fecha de su última inspección técnica."},
	{7, "Entrega", "El vehículo se entregará en la fecha y lugar indicados en este contrato junto con la documentación y los accesorios relacionados en el mismo."},
	{8, "Jurisdicción", "Para cualquier controversia derivada del presente contrato, las partes se someten a los juzgados y tribunales del domicilio del COMPRADOR cuando este tenga la condición de consumidor, y en otro caso a los del lugar de celebración del contrato."},
}

var depositClauses = []Clause{
	{1, "Reserva", "Mediante la entrega de la cantidad de " + DepositValue + " en concepto de arras penitenciales, el VENDEDOR reserva en exclusiva el vehículo " + VehicleName + " con matrícula " + Plate + " a favor del COMPRADOR, comprometiéndose a no ofrecerlo ni venderlo a terceros durante la vigencia del presente acuerdo."},
	{2, "Desistimiento del comprador", "Si el COMPRADOR desistiera de la compra o no la formalizara en el plazo pactado, perderá la totalidad de la cantidad entregada como señal, que quedará en poder del VENDEDOR en concepto de indemnización."},
	{3, "Incumplimiento del vendedor", "Si fuera el VENDEDOR quien desistiera de la venta o incumpliera la reserva, deberá devolver al COMPRADOR el doble de la cantidad recibida como señal, conforme al artículo 1454 del Código Civil."},
	{4, "Formalización", "La compraventa deberá formalizarse, con el pago del resto del precio, como fecha límite el " + Deadline + ". La cantidad entregada como señal se descontará del precio total en el momento de la formalización."},
}

const (
	PurchaseTitle = "CONTRATO DE COMPRAVENTA DE VEHÍCULO"
	DepositTitle  = "CONTRATO DE ARRAS Y RESERVA DE VEHÍCULO"
	InvoiceTitle  = "FACTURA"
	ProformaTitle = "FACTURA PROFORMA"

	ProformaBanner = "NO VÁLIDA COMO FACTURA - PRESUPUESTO PRELIMINAR"

	PurchaseRecitals = "I.- Que el VENDEDOR es propietario del vehículo que se describe a continuación y está interesado en su venta.\n" +
		"II.- Que el COMPRADOR, conocedor del estado del vehículo, está interesado en su adquisición.\n" +
		"III.- Que ambas partes se reconocen mutuamente la capacidad legal necesaria para contratar y obligarse, y a tal efecto otorgan el presente contrato con arreglo a las siguientes"

	DepositRecitals = "I.- Que el VENDEDOR es titular o tiene la facultad de disposición del vehículo que se describe a continuación.\n" +
		"II.- Que el COMPRADOR está interesado en su adquisición y desea reservarlo mediante la entrega de una señal.\n" +
		"III.- Que ambas partes acuerdan formalizar la presente reserva con sujeción a las siguientes condiciones y cláusulas."

	Closing = "Y en prueba de conformidad con cuanto antecede, las partes firman el presente documento por duplicado y a un solo efecto en el lugar y fecha indicados en el encabezamiento."

	DataProtectionShort = "Protección de datos: los datos personales recogidos en este documento serán tratados por el VENDEDOR con la única finalidad de gestionar la relación contractual, conforme al Reglamento (UE) 2016/679 y la Ley Orgánica 3/2018. Puede ejercer sus derechos de acceso, rectificación, supresión, oposición, limitación y portabilidad dirigiéndose al domicilio del responsable."

	DataProtectionLong = "En cumplimiento del Reglamento (UE) 2016/679 General de Protección de Datos y de la Ley Orgánica 3/2018 de Protección de Datos Personales y garantía de los derechos digitales, se informa de que los datos personales facilitados serán tratados por el VENDEDOR en calidad de responsable del tratamiento.\n" +
		"Finalidad: gestionar la reserva y, en su caso, la posterior compraventa del vehículo, así como el cumplimiento de las obligaciones legales, contables y fiscales derivadas de las mismas.\n" +
		"Legitimación: ejecución del contrato y cumplimiento de obligaciones legales.\n" +
		"Conservación: los datos se conservarán durante la vigencia de la relación y, posteriormente, durante los plazos de prescripción legal.\n" +
		"Destinatarios: no se cederán datos a terceros salvo a la Dirección General de Tráfico, entidades financieras intervinientes en el pago y en los casos previstos por la ley.\n" +
		"Derechos: puede ejercer los derechos de acceso, rectificación, supresión, oposición, limitación del tratamiento y portabilidad dirigiéndose por escrito al domicilio del VENDEDOR, así como presentar una reclamación ante la Agencia Española de Protección de Datos."

	InvoiceFootnote = "Factura expedida conforme al Real Decreto 1619/2012, de 30 de noviembre, por el que se aprueba el Reglamento por el que se regulan las obligaciones de facturación, y a la Ley 37/1992 del Impuesto sobre el Valor Añadido."

	NoWarranty = "El vehículo se vende sin garantía. El COMPRADOR declara conocer y aceptar el estado del vehículo, renunciando a cualquier reclamación posterior por vicios o defectos que no tengan la consideración de ocultos."
)

var ProformaDisclaimers = []string{
	"Este documento no tiene validez como factura ni es válido a efectos fiscales o contables.",
	"Los importes indicados tienen carácter orientativo y pueden variar hasta la formalización de la venta.",
	"La reserva del vehículo solo será efectiva tras la firma del contrato correspondiente y el abono de la señal.",
}

// Warranty renders the warranty sentence. Zero months means no warranty; a
// zero mileage cap means the warranty is not limited by distance.
func Warranty(months, mileageCap int, formatKm func(int) string) string {
	if months <= 0 {
		return NoWarranty
	}
	unit := "meses"
	if months == 1 {
		unit = "mes"
	}
	if mileageCap <= 0 {
		return fmt.Sprintf("El VENDEDOR garantiza el vehículo durante un periodo de %d %s desde la fecha de entrega, sin límite de kilometraje, conforme a la normativa de consumidores y usuarios.", months, unit)
	}
	return fmt.Sprintf("El VENDEDOR garantiza el vehículo durante un periodo de %d %s o %s km desde la fecha de entrega, lo que antes se cumpla, conforme a la normativa de consumidores y usuarios.", months, unit, formatKm(mileageCap))
}

// Validity renders the pro-forma validity statement.
func Validity(days int, until string) string {
	unit := "días"
	if days == 1 {
		unit = "día"
	}
	return fmt.Sprintf("Esta proforma tiene una validez de %d %s, hasta el %s.", days, unit, strings.TrimSpace(until))
}

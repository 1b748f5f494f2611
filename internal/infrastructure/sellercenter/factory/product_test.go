package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/sellercenter/internal/domain/catalog"
	"github.com/erp/sellercenter/internal/domain/shared"
)

func TestParseProduct(t *testing.T) {
	p, err := ParseProduct(element(t, productXML))
	require.NoError(t, err)

	assert.Equal(t, "SKU-001", p.SellerSku())
	assert.Equal(t, "SH-001", p.ShopSku())
	assert.Equal(t, "<p>Lightweight & fast</p>", p.Description())
	assert.Equal(t, "Nike", p.Brand().Name())
	assert.Equal(t, "1299", p.Price().String())
	assert.Equal(t, 10, p.Quantity())
	assert.Equal(t, 8, p.Available())
	assert.Equal(t, catalog.ProductStatusActive, p.Status())

	require.NotNil(t, p.SalePrice())
	assert.Equal(t, "999", p.SalePrice().String())
	require.NotNil(t, p.SaleStartDate())
	assert.Nil(t, p.SaleEndDate(), "unparseable dates are absent")

	id, ok := p.PrimaryCategory().ID()
	assert.True(t, ok)
	assert.Equal(t, 1000, id)
	assert.Equal(t, 2, p.Categories().Len())

	assert.Equal(t, []string{"https://static.example.com/1.jpg", "https://static.example.com/2.jpg"}, p.Images().URLs())

	data := p.ProductData()
	assert.Equal(t, "new", data.ConditionType())
	assert.Equal(t, "1.5", data.PackageWeight().String())
	color, ok := data.Get("Color")
	require.True(t, ok)
	assert.Equal(t, "Rojo", color.WireString())
	sizes, ok := data.Get("Sizes")
	require.True(t, ok)
	assert.Equal(t, "S,M", sizes.WireString())
}

func TestParseProduct_Errors(t *testing.T) {
	t.Run("missing price", func(t *testing.T) {
		_, err := ParseProduct(element(t, productWithoutPrice))
		var structErr *shared.StructureError
		require.True(t, errors.As(err, &structErr))
		assert.Equal(t, "Product", structErr.Model)
		assert.Equal(t, "Price", structErr.Field)
	})

	t.Run("missing product data field", func(t *testing.T) {
		e := element(t, productXML)
		data := e.SelectElement("ProductData")
		data.RemoveChild(data.SelectElement("PackageWeight"))

		_, err := ParseProduct(e)
		var structErr *shared.StructureError
		require.True(t, errors.As(err, &structErr))
		assert.Equal(t, "ProductData", structErr.Model)
		assert.Equal(t, "PackageWeight", structErr.Field)
	})

	t.Run("unknown status", func(t *testing.T) {
		e := element(t, productXML)
		e.SelectElement("Status").SetText("archived")
		_, err := ParseProduct(e)
		assert.ErrorIs(t, err, shared.ErrInvalidStatus)
	})

	t.Run("non numeric quantity", func(t *testing.T) {
		e := element(t, productXML)
		e.SelectElement("Quantity").SetText("ten")
		_, err := ParseProduct(e)
		assert.ErrorIs(t, err, shared.ErrInvalidNumber)
	})
}

func TestParseProducts_SkipsMalformed(t *testing.T) {
	body := element(t, `<Products>`+productXML+productWithoutPrice+`</Products>`)

	products, failures := New().ParseProducts(body)

	assert.Equal(t, 1, products.Len())
	_, ok := products.FindBySku("SKU-001")
	assert.True(t, ok)
	_, ok = products.FindBySku("SKU-002")
	assert.False(t, ok)

	require.Len(t, failures, 1)
	assert.Equal(t, "Product", failures[0].Factory)
	assert.ErrorIs(t, failures[0].Err, shared.ErrMissingStructuralField)
}

const globalProductXML = `<Product>
    <SellerSku>G-001</SellerSku>
    <Name>Global Shoe</Name>
    <Variation>42</Variation>
    <PrimaryCategory>1000</PrimaryCategory>
    <Categories/>
    <Description>Sold everywhere</Description>
    <Brand>Nike</Brand>
    <Status>active</Status>
    ` + productDataXML + `
    <BusinessUnits>
      <BusinessUnit>
        <BusinessUnit>Falabella</BusinessUnit><OperatorCode>FACL</OperatorCode>
        <Price>100</Price><SpecialPrice>90</SpecialPrice>
        <SpecialFromDate>2024-01-01 00:00:00</SpecialFromDate><SpecialToDate>2024-01-31 00:00:00</SpecialToDate>
        <Stock>5</Stock><Status>active</Status><IsPublished>1</IsPublished>
      </BusinessUnit>
      <BusinessUnit>
        <BusinessUnit>Falabella</BusinessUnit><OperatorCode>FAPE</OperatorCode>
        <Price>-1</Price><Stock>5</Stock><Status>active</Status>
      </BusinessUnit>
    </BusinessUnits>
  </Product>`

func TestParseGlobalProduct(t *testing.T) {
	var skipped []ItemFailure
	fa := New(WithObserver(ObserverFunc(func(f ItemFailure) { skipped = append(skipped, f) })))

	gp, err := fa.ParseGlobalProduct(element(t, globalProductXML))
	require.NoError(t, err)

	assert.Equal(t, catalog.KindGlobalProduct, gp.Kind())
	assert.Equal(t, 1, gp.BusinessUnits().Len())
	unit, ok := gp.BusinessUnits().Get("facl")
	require.True(t, ok)
	assert.Equal(t, "90", unit.SpecialPrice().String())
	require.NotNil(t, unit.IsPublished())
	assert.True(t, *unit.IsPublished())

	require.Len(t, skipped, 1)
	assert.Equal(t, "BusinessUnit", skipped[0].Factory)
	assert.ErrorIs(t, skipped[0].Err, shared.ErrInvalidPrice)
}

func TestParseGlobalProduct_BusinessUnits(t *testing.T) {
	t.Run("zero business units is a structural error", func(t *testing.T) {
		e := element(t, globalProductXML)
		units := e.SelectElement("BusinessUnits")
		for _, u := range units.SelectElements("BusinessUnit") {
			units.RemoveChild(u)
		}

		_, err := New().ParseGlobalProduct(e)
		var structErr *shared.StructureError
		require.True(t, errors.As(err, &structErr))
		assert.Equal(t, "GlobalProduct", structErr.Model)
		assert.Equal(t, "BusinessUnit", structErr.Field)
	})

	t.Run("all business units malformed", func(t *testing.T) {
		e := element(t, globalProductXML)
		units := e.SelectElement("BusinessUnits")
		units.RemoveChild(units.SelectElements("BusinessUnit")[0])

		_, err := New().ParseGlobalProduct(e)
		assert.ErrorIs(t, err, shared.ErrMissingBusinessUnit)
	})

	t.Run("missing container", func(t *testing.T) {
		e := element(t, globalProductXML)
		e.RemoveChild(e.SelectElement("BusinessUnits"))

		_, err := New().ParseGlobalProduct(e)
		var structErr *shared.StructureError
		require.True(t, errors.As(err, &structErr))
		assert.Equal(t, "BusinessUnits", structErr.Field)
	})
}

func TestParseGlobalProducts(t *testing.T) {
	body := element(t, `<Products>`+globalProductXML+productWithoutPrice+`</Products>`)

	products, failures := New().ParseGlobalProducts(body)

	require.Equal(t, 1, products.Len())
	assert.Equal(t, catalog.KindGlobalProduct, products.All()[0].Kind())
	require.Len(t, failures, 1)
	assert.Equal(t, "GlobalProduct", failures[0].Factory)
}

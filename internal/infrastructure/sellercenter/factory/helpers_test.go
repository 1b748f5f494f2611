package factory

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

// element parses raw and returns its root element
func element(t *testing.T, raw string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(raw))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

const productDataXML = `<ProductData>
      <ConditionType>new</ConditionType>
      <PackageHeight>10</PackageHeight>
      <PackageWidth>20</PackageWidth>
      <PackageLength>30</PackageLength>
      <PackageWeight>1.5</PackageWeight>
      <Color>Rojo</Color>
      <Sizes><Size>S</Size><Size>M</Size></Sizes>
    </ProductData>`

const productXML = `<Product>
    <SellerSku>SKU-001</SellerSku>
    <ShopSku>SH-001</ShopSku>
    <Name>Running Shoe</Name>
    <Brand>Nike</Brand>
    <Description><![CDATA[<p>Lightweight & fast</p>]]></Description>
    <TaxClass>default</TaxClass>
    <Variation>42</Variation>
    <ParentSku>SKU-000</ParentSku>
    <Quantity>10</Quantity>
    <Available>8</Available>
    <Price>1299.00</Price>
    <SalePrice>999.00</SalePrice>
    <SaleStartDate>2024-01-01 00:00:00</SaleStartDate>
    <SaleEndDate>not a date</SaleEndDate>
    <Status>active</Status>
    <ProductId>7891234567890</ProductId>
    <Url>https://www.example.com/p/1</Url>
    <MainImage>https://static.example.com/1.jpg</MainImage>
    <Images>
      <Image>https://static.example.com/1.jpg</Image>
      <Image>https://static.example.com/2.jpg</Image>
      <Image></Image>
    </Images>
    <PrimaryCategory>1000</PrimaryCategory>
    <Categories>1000,1001</Categories>
    ` + productDataXML + `
  </Product>`

// productWithoutPrice is productXML without its <Price> element
const productWithoutPrice = `<Product>
    <SellerSku>SKU-002</SellerSku>
    <ShopSku>SH-002</ShopSku>
    <Name>Broken</Name>
    <Brand>Nike</Brand>
    <Description>x</Description>
    <TaxClass>default</TaxClass>
    <Variation></Variation>
    <ParentSku></ParentSku>
    <Quantity>1</Quantity>
    <Available>1</Available>
    <Status>active</Status>
    <ProductId></ProductId>
    <PrimaryCategory>1000</PrimaryCategory>
    <Categories></Categories>
    ` + productDataXML + `
  </Product>`

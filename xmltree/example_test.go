package xmltree_test

import (
	"fmt"
	"log"

	"github.com/CognitoIQ/go-xsd/xmltree"
)

const schema = `
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"
           xmlns:tns="urn:shop" targetNamespace="urn:shop">
  <xs:element name="cart" type="tns:Cart"/>
  <xs:complexType name="Cart">
    <xs:sequence>
      <xs:element name="item" type="xs:string" maxOccurs="unbounded"/>
      <xs:element name="coupon" type="tns:Coupon" minOccurs="0"/>
    </xs:sequence>
  </xs:complexType>
</xs:schema>`

func ExampleElement_Search() {
	root, err := xmltree.Parse([]byte(schema))
	if err != nil {
		log.Fatal(err)
	}
	for _, el := range root.Search("http://www.w3.org/2001/XMLSchema", "element") {
		fmt.Println(el.Attr("", "name"))
	}

	// Output:
	// cart
	// item
	// coupon
}

func ExampleElement_Resolve() {
	root, err := xmltree.Parse([]byte(schema))
	if err != nil {
		log.Fatal(err)
	}
	for _, el := range root.Search("", "element") {
		name := el.Resolve(el.Attr("", "type"))
		fmt.Printf("%s: {%s}%s\n", el.Attr("", "name"), name.Space, name.Local)
	}

	// Output:
	// cart: {urn:shop}Cart
	// item: {http://www.w3.org/2001/XMLSchema}string
	// coupon: {urn:shop}Coupon
}

func ExampleElement_SearchFunc() {
	root, err := xmltree.Parse([]byte(schema))
	if err != nil {
		log.Fatal(err)
	}
	optional := root.SearchFunc(func(el *xmltree.Element) bool {
		return el.Attr("", "minOccurs") == "0"
	})
	for _, el := range optional {
		fmt.Printf("line %d: %s\n", el.Line, el.Attr("", "name"))
	}

	// Output:
	// line 8: coupon
}

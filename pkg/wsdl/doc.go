// Package wsdl parses AdWords service descriptions (WSDL 1.1 documents) into
// the operation list and schema elements the SDK needs, and classifies each
// operation by the cardinality of its response.
//
// # Parsing
//
//	d, err := wsdl.ParseFile("/tmp/api/adwords/v11/CampaignService?wsdl")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, op := range d.Operations {
//		fmt.Println(op.Name, op.Params)
//	}
//
// Operations come from the portType, or from the binding when a description
// has no portType. Names are matched by local name, so any namespace prefix is
// accepted. A description without operations fails with ErrNoOperations.
//
// # Classification
//
// Classify looks at every top-level element named <Operation>Response and
// follows complexType, then the first sequence, all or choice group, then the
// first element particle of that group. If that particle is declared with
// maxOccurs="unbounded" the operation is Plural:
//
//	<element name="getCampaignListResponse">
//	  <complexType>
//	    <sequence>
//	      <element name="getCampaignListReturn" maxOccurs="unbounded" type="impl:Campaign"/>
//	    </sequence>
//	  </complexType>
//	</element>
//
// Annotations inside the group are skipped. Responses missing any step of the
// walk, such as primitive or empty responses, are left out of the result and
// count as Singular.
package wsdl

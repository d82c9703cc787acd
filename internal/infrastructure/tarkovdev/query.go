package tarkovdev

// itemsQuery requests every item with its market and vendor offers.
const itemsQuery = `{
  items {
    id
    name
    shortName
    avg24hPrice
    lastLowPrice
    gridImageLink
    sellFor {
      price
      currency
      source
    }
    buyFor {
      price
      currency
      source
    }
  }
}`

package httpserver

// pageTemplates holds every storefront page. Cart item markup and order
// details arrive pre-rendered (and pre-escaped) from the core renderer and
// are inserted raw.
const pageTemplates = `
{{define "head"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}} - Shopfront</title>
</head>
<body>
<nav>
  <a href="/">Shop</a>
  <a href="/checkout">Checkout</a>
  <a href="/contact">Contact</a>
  <a href="/wishlist">Wishlist</a>
  <span>Cart (<span id="cart-count">{{.CartCount}}</span>)</span>
</nav>
{{range .Notices}}<p class="notice">{{.}}</p>{{end}}
{{end}}

{{define "foot"}}
<footer>
  <form id="newsletter-form" method="post" action="/newsletter">
    <input type="email" id="newsletter-email" name="newsletter-email" placeholder="Your email">
    <button type="submit">Subscribe</button>
  </form>
</footer>
<script>
document.addEventListener('click', function (e) {
  if (!e.target.classList.contains('remove-item')) return;
  var f = document.createElement('form');
  f.method = 'post';
  f.action = '/cart/remove';
  var i = document.createElement('input');
  i.type = 'hidden';
  i.name = 'index';
  i.value = e.target.dataset.index;
  f.appendChild(i);
  document.body.appendChild(f);
  f.submit();
});
</script>
</body>
</html>{{end}}

{{define "home"}}{{template "head" .}}
<main class="product-grid">
{{range .Products}}
  <div class="product-card">
    <img src="/images/product{{.ID}}.jpg" alt="{{.Name}}">
    <h3>{{.Name}}</h3>
    <p>P {{.Price}}</p>
    <form method="post" action="/cart/add">
      <input type="hidden" name="name" value="{{.Name}}">
      <input type="hidden" name="price" value="{{.Price}}">
      <input type="hidden" name="id" value="{{.ID}}">
      <button class="add-to-cart" type="submit">Add to Cart</button>
    </form>
    <form method="post" action="/cart/buy-now">
      <input type="hidden" name="name" value="{{.Name}}">
      <input type="hidden" name="price" value="{{.Price}}">
      <input type="hidden" name="id" value="{{.ID}}">
      <button class="buy-now" type="submit">Buy Now</button>
    </form>
  </div>
{{end}}
</main>
{{template "foot" .}}{{end}}

{{define "checkout"}}{{template "head" .}}
{{if .ShowCheckout}}
<div class="checkout-container" id="checkout-container">
  <div id="checkout-items">{{.Items}}</div>
  <p>Subtotal: P <span id="checkout-subtotal">{{.Subtotal}}</span></p>
  <p>Tax (15%): P <span id="checkout-tax">{{.Tax}}</span></p>
  <p>Total: P <span id="checkout-total">{{.Total}}</span></p>

  <form id="checkout-form" method="post" action="/checkout">
    <label>Full Name
      <input type="text" id="full-name" name="full-name" value="{{index .Fields "full-name"}}">
      <span class="error" id="error-full-name">{{index .Errors "full-name"}}</span>
    </label>
    <label>Email
      <input type="text" id="email" name="email" value="{{index .Fields "email"}}">
      <span class="error" id="error-email">{{index .Errors "email"}}</span>
    </label>
    <label>Card Number
      <input type="text" id="card-number" name="card-number" value="{{index .Fields "card-number"}}">
      <span class="error" id="error-card-number">{{index .Errors "card-number"}}</span>
    </label>
    <label>Expiry (MM/YY)
      <input type="text" id="card-expiry" name="card-expiry" value="{{index .Fields "card-expiry"}}">
      <span class="error" id="error-card-expiry">{{index .Errors "card-expiry"}}</span>
    </label>
    <label>CVC
      <input type="text" id="card-cvc" name="card-cvc" value="{{index .Fields "card-cvc"}}">
      <span class="error" id="error-card-cvc">{{index .Errors "card-cvc"}}</span>
    </label>

    <fieldset>
      <legend>Billing Address</legend>
      <input type="text" id="billing-street" name="billing-street" placeholder="Street" value="{{index .Fields "billing-street"}}">
      <input type="text" id="billing-city" name="billing-city" placeholder="City" value="{{index .Fields "billing-city"}}">
      <input type="text" id="billing-postal" name="billing-postal" placeholder="Postal Code" value="{{index .Fields "billing-postal"}}">
      <input type="text" id="billing-country" name="billing-country" placeholder="Country" value="{{index .Fields "billing-country"}}">
    </fieldset>

    <fieldset>
      <legend>Shipping Address</legend>
      <input type="text" id="shipping-street" name="shipping-street" placeholder="Street" value="{{index .Fields "shipping-street"}}"{{if .ShippingLocked}} disabled{{end}}>
      <input type="text" id="shipping-city" name="shipping-city" placeholder="City" value="{{index .Fields "shipping-city"}}"{{if .ShippingLocked}} disabled{{end}}>
      <input type="text" id="shipping-postal" name="shipping-postal" placeholder="Postal Code" value="{{index .Fields "shipping-postal"}}"{{if .ShippingLocked}} disabled{{end}}>
      <input type="text" id="shipping-country" name="shipping-country" placeholder="Country" value="{{index .Fields "shipping-country"}}"{{if .ShippingLocked}} disabled{{end}}>
    </fieldset>

    <button id="proceed-to-checkout" type="submit"{{if not .ProceedEnabled}} disabled style="opacity:0.5;cursor:not-allowed"{{end}}>Place Order</button>
  </form>

  <form method="post" action="/checkout/billing-toggle">
    {{range .BillingFieldNames}}<input type="hidden" name="{{.}}" value="{{index $.Fields .}}">{{end}}
    <label>
      <input type="checkbox" id="same-as-billing" name="same-as-billing"{{if .SameAsBilling}} checked{{end}} onchange="this.form.submit()">
      Shipping same as billing
    </label>
  </form>
</div>
{{end}}
{{if .ShowConfirmation}}
<div id="confirmation-step">
  <h2>Thank you for your order!</h2>
  <div id="order-details">{{.OrderDetails}}</div>
</div>
{{end}}
{{template "foot" .}}{{end}}

{{define "contact"}}{{template "head" .}}
<main>
  <form id="contact-form" method="post" action="/contact">
    <input type="text" id="name" name="name" placeholder="Name">
    <input type="text" id="email" name="email" placeholder="Email">
    <textarea id="message" name="message" placeholder="Message"></textarea>
    <button type="submit">Send</button>
  </form>
</main>
{{template "foot" .}}{{end}}

{{define "wishlist"}}{{template "head" .}}
<main>
  <p class="placeholder-message">Your wishlist is waiting for its first item.</p>
</main>
{{template "foot" .}}{{end}}
`
